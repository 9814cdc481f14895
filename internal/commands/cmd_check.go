package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/pkg/iojson"
)

const fieldFile = "file"

// checkInput is the JSON accepted on --input or stdin.
type checkInput struct {
	Hashtags    string `json:"hashtags"`
	Description string `json:"description"`
	File        string `json:"file"`
}

type checkError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type checkResult struct {
	Valid  bool         `json:"valid"`
	Errors []checkError `json:"errors,omitempty"`
}

type CheckCmd struct {
	flags *Flags

	input      checkInput
	reader     iojson.Reader[checkInput]
	jsonOutput bool
}

// NewCheckCmd creates a new check command
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Validate hashtags and a description without posting",
		UsageText: "pixpost check [--hashtags TAGS] [--description TEXT] [--file PATH] [--json]",
		Description: `Runs the same rules as the upload dialog and exits non-zero when any fails.

Without --hashtags or --description the values are read as JSON
({"hashtags": "...", "description": "...", "file": "..."}) from --input or
piped stdin.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "hashtags",
				Aliases:     []string{"t"},
				Usage:       "space separated hashtags",
				Destination: &cmd.input.Hashtags,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "post description",
				Destination: &cmd.input.Description,
			},
			&cli.StringFlag{
				Name:        "file",
				Usage:       "image path whose extension is checked",
				Destination: &cmd.input.File,
			},
			cmd.reader.Flag(),
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the result as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CheckCmd) run(_ context.Context, c *cli.Command) error {
	in := cmd.input
	if !c.IsSet("hashtags") && !c.IsSet("description") && cmd.reader.Provided() {
		read, err := cmd.reader.Read()
		if err != nil {
			return err
		}
		in = read
	}

	res := check(cmd.flags.Config.Upload.AllowedExtensions, cmd.flags.Config.FieldLimits(), cmd.flags.Config.Messages(), in)

	w := c.Root().Writer
	if cmd.jsonOutput {
		if err := iojson.Write(w, c.Root().ErrWriter, res); err != nil {
			return err
		}
	} else {
		for _, e := range res.Errors {
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", paint(w, styles.FailStyle, styles.IconCross), e.Field, e.Message)
		}
		if res.Valid {
			_, _ = fmt.Fprintln(w, paint(w, styles.OKStyle, styles.IconCheck+" all rules pass"))
		}
	}

	if !res.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

// check runs the upload rules over in. The file is only checked when set.
func check(exts []string, limits validate.Limits, msgs validate.Messages, in checkInput) checkResult {
	form := validate.NewUploadForm(limits, msgs)
	form.SetValue(validate.FieldHashtags, in.Hashtags)
	form.SetValue(validate.FieldDescription, in.Description)

	res := checkResult{Valid: form.Validate()}
	for _, field := range form.Fields() {
		if msg := form.Error(field); msg != "" {
			res.Errors = append(res.Errors, checkError{Field: field, Message: msg})
		}
	}

	if in.File != "" && !upload.HasAllowedExtension(in.File, exts) {
		res.Valid = false
		res.Errors = append(res.Errors, checkError{
			Field:   fieldFile,
			Message: "unsupported file type: " + filepath.Base(in.File),
		})
	}

	return res
}
