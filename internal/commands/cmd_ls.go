package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/imagefind"
	"github.com/colonyops/pixpost/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	recursive  bool
	hidden     bool
	limit      int
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List images that can be posted",
		UsageText: "pixpost ls [dir...] [--recursive] [--hidden] [--limit N] [--json]",
		Description: `Lists the files in each directory whose extension is allowed by
upload.allowed_extensions. Defaults to tui.start_dir when no directory is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "recursive",
				Aliases:     []string{"r"},
				Usage:       "descend into subdirectories",
				Destination: &cmd.recursive,
			},
			&cli.BoolFlag{
				Name:        "hidden",
				Usage:       "include dot files and directories",
				Destination: &cmd.hidden,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum images per directory (0 for all)",
				Destination: &cmd.limit,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// imageInfo is the JSON output format for pixpost ls --json.
type imageInfo struct {
	Root     string    `json:"root"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	roots := c.Args().Slice()
	if len(roots) == 0 {
		roots = []string{cmd.flags.Config.TUI.StartDir}
	}

	results, err := imagefind.FindAll(ctx, roots, cmd.flags.Config.Upload.AllowedExtensions, imagefind.Options{
		Recursive: cmd.recursive,
		Hidden:    cmd.hidden,
		Limit:     cmd.limit,
	})
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		infos := make([]imageInfo, 0)
		for _, r := range results {
			for _, img := range r.Images {
				infos = append(infos, imageInfo{Root: r.Root, Path: img.Path, Size: img.Size, Modified: img.ModTime})
			}
		}
		return iojson.Write(out, c.Root().ErrWriter, infos)
	}

	total := 0
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "%s:\n", r.Root)
		}
		for _, img := range r.Images {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", img.Rel, humanize.Bytes(uint64(img.Size)), humanize.Time(img.ModTime))
		}
		total += len(r.Images)
	}
	_ = w.Flush()

	if total == 0 {
		fmt.Fprintf(os.Stderr, "No images found\n")
	}
	return nil
}
