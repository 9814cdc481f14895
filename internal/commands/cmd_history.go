package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/pixpost/internal/core/upload"
	"github.com/colonyops/pixpost/internal/core/validate"
	"github.com/colonyops/pixpost/pkg/iojson"
)

type HistoryCmd struct {
	flags *Flags
	app   *App

	// flags
	limit      int
	tag        string
	jsonOutput bool
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags, app *App) *HistoryCmd {
	return &HistoryCmd{flags: flags, app: app}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "List submitted posts",
		UsageText: "pixpost history [--limit N] [--tag TAG] [--json]",
		Description: `Shows posts recorded in the local database, newest first.

Posts delivered to an endpoint are recorded with the endpoint as destination;
posts kept locally show "local".`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "maximum number of posts",
				Value:       20,
				Destination: &cmd.limit,
			},
			&cli.StringFlag{
				Name:        "tag",
				Usage:       "only posts with this hashtag",
				Destination: &cmd.tag,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
		Commands: []*cli.Command{
			{
				Name:      "rm",
				Usage:     "Delete a post from the history",
				UsageText: "pixpost history rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

// postInfo is the JSON output format for pixpost history --json.
type postInfo struct {
	ID          string    `json:"id"`
	File        string    `json:"file"`
	Scale       int       `json:"scale"`
	Effect      string    `json:"effect"`
	Level       string    `json:"level,omitempty"`
	Hashtags    []string  `json:"hashtags"`
	Description string    `json:"description"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"created_at"`
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	tag := strings.ToLower(strings.TrimSpace(cmd.tag))
	if tag != "" && !strings.HasPrefix(tag, "#") {
		tag = "#" + tag
	}
	if tag != "" && !validate.IsHashtag(tag) {
		return fmt.Errorf("invalid hashtag %q", cmd.tag)
	}

	records, err := cmd.app.Posts.List(ctx, upload.ListOptions{Hashtag: tag, Limit: cmd.limit})
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		infos := make([]postInfo, 0, len(records))
		for _, r := range records {
			infos = append(infos, postInfo{
				ID:          r.ID,
				File:        r.FileName,
				Scale:       r.Scale,
				Effect:      r.Effect.String(),
				Level:       r.EffectLevel(),
				Hashtags:    r.Hashtags,
				Description: r.Description,
				Destination: r.Destination,
				CreatedAt:   r.CreatedAt,
			})
		}
		return iojson.Write(out, c.Root().ErrWriter, infos)
	}

	if len(records) == 0 {
		fmt.Fprintf(os.Stderr, "No posts found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tFILE\tEFFECT\tHASHTAGS\tDESTINATION\tPOSTED")
	for _, r := range records {
		fx := r.Effect.String()
		if lvl := r.EffectLevel(); lvl != "" {
			fx += " " + lvl
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(r.ID), r.FileName, fx, strings.Join(r.Hashtags, " "), r.Destination, humanize.Time(r.CreatedAt))
	}
	_ = w.Flush()

	if tag != "" {
		return nil
	}

	total, err := cmd.app.Posts.Count(ctx)
	if err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if int64(len(records)) < total {
		fmt.Fprintf(os.Stderr, "\nShowing %d of %s posts\n", len(records), humanize.Comma(total))
	}
	return nil
}

func (cmd *HistoryCmd) runRm(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("missing post id. Usage: %s", c.UsageText)
	}

	id, err := cmd.resolveID(ctx, id)
	if err != nil {
		return err
	}

	if err := cmd.app.Posts.Delete(ctx, id); err != nil {
		if errors.Is(err, upload.ErrNotFound) {
			return fmt.Errorf("post %s not found", id)
		}
		return fmt.Errorf("delete post: %w", err)
	}

	_, _ = fmt.Fprintf(c.Root().Writer, "deleted %s\n", id)
	return nil
}

// resolveID expands the short id printed by the table to a full post id.
func (cmd *HistoryCmd) resolveID(ctx context.Context, prefix string) (string, error) {
	if _, err := cmd.app.Posts.Get(ctx, prefix); err == nil {
		return prefix, nil
	}

	records, err := cmd.app.Posts.List(ctx, upload.ListOptions{})
	if err != nil {
		return "", fmt.Errorf("list posts: %w", err)
	}

	var matches []string
	for _, r := range records {
		if strings.HasPrefix(r.ID, prefix) {
			matches = append(matches, r.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("post %s not found", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %s is ambiguous, matches %d posts", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
