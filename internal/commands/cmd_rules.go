package commands

import (
	"context"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/config"
	"github.com/colonyops/pixpost/internal/core/effect"
	"github.com/colonyops/pixpost/internal/core/scale"
	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/pkg/tmpl"
)

const rulesTemplate = `# Upload rules

Locale: {{ upper .Locale }}

## File

Allowed extensions: {{ codes .Extensions ", " }}

## Hashtags

- At most {{ .MaxHashtags }} hashtags, separated by spaces.
- Each starts with {{ code "#" }} and is at most {{ .MaxHashtagLength }} characters long.
{{- range .HashtagMessages }}
- {{ . }}
{{- end }}

## Description

- {{ .DescriptionMessage }}

## Scale

From {{ .ScaleMin }} to {{ .ScaleMax }} in steps of {{ .ScaleStep }}. New uploads start at {{ .ScaleMax }}.

## Effects

| Effect | Filter | Range | Step |
|--------|--------|-------|------|
{{- range .Effects }}
| {{ .Name }} | {{ code .Filter }} | {{ .Range }} | {{ .Step }} |
{{- end }}
`

type rulesData struct {
	Locale             string
	Extensions         []string
	MaxHashtags        int
	MaxHashtagLength   int
	HashtagMessages    []string
	DescriptionMessage string
	ScaleMin           string
	ScaleMax           string
	ScaleStep          string
	Effects            []effectRow
}

type effectRow struct {
	Name   string
	Filter string
	Range  string
	Step   string
}

type RulesCmd struct {
	flags *Flags
	raw   bool
}

// NewRulesCmd creates a new rules command
func NewRulesCmd(flags *Flags) *RulesCmd {
	return &RulesCmd{flags: flags}
}

// Register adds the rules command to the application
func (cmd *RulesCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rules",
		Usage:     "Show the rules uploads are checked against",
		UsageText: "pixpost rules [--raw]",
		Description: `Prints the active limits, the validation messages in the configured locale
and the range of every preview effect.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RulesCmd) run(_ context.Context, c *cli.Command) error {
	md, err := rulesMarkdown(cmd.flags.Config)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if cmd.raw || !isTerminal(w) {
		_, err = fmt.Fprint(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(terminalWidth(w, 80)),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render rules: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}

// rulesMarkdown describes the limits of cfg as markdown.
func rulesMarkdown(cfg *config.Config) (string, error) {
	msgs := cfg.Messages()
	sc := cfg.ScaleLimits()

	data := rulesData{
		Locale:           cfg.TUI.Locale,
		Extensions:       cfg.Upload.AllowedExtensions,
		MaxHashtags:      cfg.Upload.MaxHashtags,
		MaxHashtagLength: validate.MaxHashtagLength,
		HashtagMessages: []string{
			msgs.DuplicateHashtags,
			msgs.TooManyHashtags,
			msgs.InvalidHashtag,
		},
		DescriptionMessage: msgs.DescriptionLength,
		ScaleMin:           scale.Label(sc.Min),
		ScaleMax:           scale.Label(sc.Max),
		ScaleStep:          scale.Label(sc.Step),
	}

	for _, e := range effect.All() {
		spec := e.Spec()
		if e == effect.None {
			data.Effects = append(data.Effects, effectRow{Name: spec.Name, Filter: "none", Range: "-", Step: "-"})
			continue
		}
		data.Effects = append(data.Effects, effectRow{
			Name:   spec.Name,
			Filter: spec.CSSFunction,
			Range:  spec.FormatValue(spec.Min) + spec.Unit + " - " + spec.FormatValue(spec.Max) + spec.Unit,
			Step:   spec.FormatValue(spec.Step) + spec.Unit,
		})
	}

	return tmpl.Render(rulesTemplate, data)
}
