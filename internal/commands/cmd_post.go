package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/logging"
	"github.com/colonyops/pixpost/internal/core/notify"
	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/internal/tui"
)

var errScaleStep = errors.New("scale is not reachable from the configured steps")

type PostCmd struct {
	flags *Flags
	app   *App

	hashtags    string
	description string
	scale       int
	effect      string
	intensity   float64
	noPrompt    bool
}

// NewPostCmd creates a new post command
func NewPostCmd(flags *Flags, app *App) *PostCmd {
	return &PostCmd{flags: flags, app: app}
}

// Register adds the post command to the application
func (cmd *PostCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "post",
		Usage:     "Publish an image without the full screen dialog",
		UsageText: "pixpost post <file> [--hashtags TAGS] [--description TEXT] [--scale N] [--effect NAME] [--intensity V]",
		Description: `Opens an upload session for the file, applies the given controls and submits.

Missing hashtags and description are asked for interactively when running in a
terminal. Use --no-prompt to submit them empty instead.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "hashtags",
				Aliases:     []string{"t"},
				Usage:       "space separated hashtags",
				Destination: &cmd.hashtags,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "post description",
				Destination: &cmd.description,
			},
			&cli.IntFlag{
				Name:        "scale",
				Usage:       "zoom percentage",
				Destination: &cmd.scale,
			},
			&cli.StringFlag{
				Name:        "effect",
				Aliases:     []string{"e"},
				Usage:       "preview effect (none, chrome, sepia, marvin, phobos, heat)",
				Value:       "none",
				Destination: &cmd.effect,
			},
			&cli.FloatFlag{
				Name:        "intensity",
				Usage:       "effect intensity (defaults to the effect maximum)",
				Destination: &cmd.intensity,
			},
			&cli.BoolFlag{
				Name:        "no-prompt",
				Usage:       "never prompt for missing fields",
				Destination: &cmd.noPrompt,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PostCmd) run(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("missing image path. Usage: %s", c.UsageText)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat image: %w", err)
	}

	opts := tui.UploadOptions(cmd.flags.Config)

	if !cmd.noPrompt && isTerminal(os.Stdin) && (!c.IsSet("hashtags") || !c.IsSet("description")) {
		if err := cmd.runForm(opts); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	controls := postControls{
		Hashtags:     cmd.hashtags,
		Description:  cmd.description,
		Effect:       cmd.effect,
		Scale:        cmd.scale,
		Intensity:    cmd.intensity,
		SetScale:     c.IsSet("scale"),
		SetIntensity: c.IsSet("intensity"),
	}

	file := upload.File{Name: filepath.Base(path), Path: path, Size: info.Size()}
	return publish(ctx, opts, cmd.app.Submitter, c.Root().Writer, file, controls)
}

func (cmd *PostCmd) runForm(opts upload.Options) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hashtags").
				Description(fmt.Sprintf("Up to %d, separated by spaces", opts.Limits.MaxHashtags)).
				Placeholder("#travel #sea").
				Validate(func(s string) error {
					return validate.Hashtags(s, opts.Limits, opts.Messages)
				}).
				Value(&cmd.hashtags),
			huh.NewText().
				Title("Description").
				Description(fmt.Sprintf("At most %d characters", opts.Limits.MaxDescriptionLength)).
				CharLimit(opts.Limits.MaxDescriptionLength).
				Validate(func(s string) error {
					return validate.Description(s, opts.Limits, opts.Messages)
				}).
				Value(&cmd.description),
		),
	).WithTheme(styles.FormTheme()).Run()
}

// postControls are the dialog inputs applied by publish.
type postControls struct {
	Hashtags     string
	Description  string
	Effect       string
	Scale        int
	Intensity    float64
	SetScale     bool
	SetIntensity bool
}

// writerNotifier prints notifications and closes them immediately.
type writerNotifier struct {
	w io.Writer
}

func (n writerNotifier) Notify(level notify.Level, message string, onClose func()) {
	icon := paint(n.w, lipgloss.NewStyle().Foreground(styles.LevelColor(level)), styles.LevelIcon(level))
	_, _ = fmt.Fprintf(n.w, "%s %s\n", icon, message)
	if onClose != nil {
		onClose()
	}
}

// publish drives an upload session through the same events the dialog
// raises and waits for the submission.
func publish(ctx context.Context, opts upload.Options, submitter upload.Submitter, w io.Writer, file upload.File, in postControls) error {
	log := logging.Component("cmd.post")

	fx, err := effect.Parse(in.Effect)
	if err != nil {
		return err
	}

	s, err := upload.Open(opts, upload.Deps{
		Submitter: submitter,
		Notifier:  writerNotifier{w: w},
		Logger:    log,
	}, []upload.File{file})
	if err != nil {
		return err
	}
	defer s.Close()

	s.Dispatch(upload.EventHashtagsInput, upload.Input{Text: in.Hashtags})
	s.Dispatch(upload.EventDescriptionInput, upload.Input{Text: in.Description})

	if in.SetScale {
		if err := applyScale(s, in.Scale); err != nil {
			return err
		}
	}

	s.Dispatch(upload.EventEffectChoice, upload.Input{Effect: fx})
	if in.SetIntensity {
		s.Dispatch(upload.EventIntensityUpdate, upload.Input{Value: in.Intensity})
	}

	r := s.Dispatch(upload.EventSubmit, upload.Input{})
	if r.Err != nil {
		if ferr := s.Err(); ferr != nil {
			return fmt.Errorf("%w: %w", r.Err, ferr)
		}
		return r.Err
	}

	var submitErr error
	select {
	case submitErr = <-r.Pending:
	case <-ctx.Done():
		submitErr = ctx.Err()
	}
	s.Complete(submitErr)
	return submitErr
}

// applyScale steps the scale control until it reaches target.
func applyScale(s *upload.Session, target int) error {
	lim := s.ScaleLimits()
	if target < lim.Min || target > lim.Max || (target-lim.Min)%lim.Step != 0 {
		return fmt.Errorf("%w: %s (range %s-%s, step %d)", errScaleStep,
			scale.Label(target), scale.Label(lim.Min), scale.Label(lim.Max), lim.Step)
	}
	for s.Scale() > target {
		s.Dispatch(upload.EventScaleSmaller, upload.Input{})
	}
	for s.Scale() < target {
		s.Dispatch(upload.EventScaleBigger, upload.Input{})
	}
	return nil
}
