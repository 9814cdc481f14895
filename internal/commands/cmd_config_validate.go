package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/pixpost/internal/core/styles"
	"github.com/colonyops/pixpost/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "pixpost config validate [options]",
				Description: "Validates the configuration file, checking limits, the submit endpoint, the theme and the locale.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "pixpost config show",
				Description: "Prints the configuration with defaults applied as YAML.",
				Action:      cmd.runShow,
			},
		},
	})

	return app
}

// validationIssue is one failing config field.
type validationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResult struct {
	Path   string            `json:"path"`
	Valid  bool              `json:"valid"`
	Errors []validationIssue `json:"errors,omitempty"`
}

// validationIssues flattens a config load error. Field errors are listed per
// field; anything else (unreadable file, bad YAML) is a single issue.
func validationIssues(err error) []validationIssue {
	if err == nil {
		return nil
	}

	var fields criterio.FieldErrors
	if errors.As(err, &fields) {
		issues := make([]validationIssue, 0, len(fields))
		for _, fe := range fields {
			issues = append(issues, validationIssue{Field: fe.Field, Message: fe.Err.Error()})
		}
		return issues
	}

	return []validationIssue{{Message: err.Error()}}
}

func (cmd *ConfigCmd) runValidate(_ context.Context, c *cli.Command) error {
	result := validationResult{
		Path:   cmd.flags.ConfigPath,
		Errors: validationIssues(cmd.flags.ConfigErr),
	}
	result.Valid = len(result.Errors) == 0

	w := c.Root().Writer

	if cmd.format == "json" {
		if err := iojson.Write(w, c.Root().ErrWriter, result); err != nil {
			return err
		}
	} else {
		for _, issue := range result.Errors {
			mark := paint(w, styles.FailStyle, styles.IconCross)
			if issue.Field == "" {
				_, _ = fmt.Fprintf(w, "%s %s\n", mark, issue.Message)
				continue
			}
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", mark, issue.Field, issue.Message)
		}

		_, _ = fmt.Fprintln(w)
		if result.Valid {
			_, _ = fmt.Fprintln(w, paint(w, styles.OKStyle, styles.IconCheck+" Configuration is valid"))
		} else {
			_, _ = fmt.Fprintf(w, "%s\n", paint(w, styles.FailStyle, fmt.Sprintf("%d error(s) found", len(result.Errors))))
		}
	}

	if !result.Valid {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigCmd) runShow(_ context.Context, c *cli.Command) error {
	if cmd.flags.ConfigErr != nil {
		return cmd.flags.ConfigErr
	}

	out, err := yaml.Marshal(cmd.flags.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = c.Root().Writer.Write(out)
	return err
}
