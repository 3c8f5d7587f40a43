package main

import (
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/folio/internal/config"
	"github.com/hpungsan/folio/internal/content"
	"github.com/hpungsan/folio/internal/errors"
	"github.com/hpungsan/folio/internal/facet"
	"github.com/hpungsan/folio/internal/ops"
	"github.com/hpungsan/folio/internal/tui"
	"github.com/hpungsan/folio/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(lib *content.Library, db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "folio",
		Usage:   "Portfolio listings with faceted search",
		Version: Version,
		Commands: []*cli.Command{
			serveCmd(lib, db, cfg),
			listCmd(lib),
			timelineCmd(lib),
			browseCmd(lib, cfg),
			toolsCmd(lib),
			encounterCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(lib *content.Library, db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Usage: "Address to listen on (default from config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (default from config)"},
			&cli.BoolFlag{Name: "no-encounters", Usage: "Do not track visitor encounters"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.Bind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}
			if port <= 0 || port > 65535 {
				return outputError(errors.NewInvalidRequest(fmt.Sprintf("invalid port: %d", port)))
			}

			database := db
			if c.Bool("no-encounters") {
				database = nil
			}

			srv := web.NewServer(lib, database, cfg, Version, bind, port)
			if err := web.Run(srv); err != nil {
				return outputError(errors.NewInternal(err))
			}
			return nil
		},
	}
}

// filterFlags are the facet flags shared by list, timeline and browse.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "q", Aliases: []string{"query"}, Usage: "Free-text search"},
		&cli.StringFlag{Name: "year", Aliases: []string{"y"}, Usage: "Four-digit year"},
		&cli.StringFlag{Name: "month", Aliases: []string{"m"}, Usage: "Two-digit month (with --year)"},
		&cli.StringFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Exact tag"},
		&cli.StringFlag{Name: "type", Usage: "Talk type, stack category or tool category"},
		&cli.StringFlag{Name: "skill", Aliases: []string{"s"}, Usage: "Project stack (career)"},
	}
}

// criteriaFromFlags reads the filter flags into criteria.
func criteriaFromFlags(c *cli.Context) facet.Criteria {
	return facet.Criteria{
		Query: c.String("q"),
		Year:  c.String("year"),
		Month: c.String("month"),
		Tag:   c.String("tag"),
		Type:  c.String("type"),
		Skill: c.String("skill"),
	}
}

// listingArg returns the required positional listing name.
func listingArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", errors.NewInvalidRequest("listing is required: one of " + strings.Join(content.ListingNames, ", "))
	}
	return c.Args().First(), nil
}

// listCmd creates the list command.
func listCmd(lib *content.Library) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "Filter a listing and print items with facet counts",
		ArgsUsage: "<" + strings.Join(content.ListingNames, "|") + ">",
		Flags: append(filterFlags(),
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Value: ops.DefaultListLimit, Usage: "Maximum items to return (0 for all)"},
			&cli.IntFlag{Name: "offset", Aliases: []string{"o"}, Value: 0, Usage: "Items to skip"},
		),
		Action: func(c *cli.Context) error {
			name, err := listingArg(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.List(lib, ops.ListInput{
				Listing:  name,
				Criteria: criteriaFromFlags(c),
				Limit:    c.Int("limit"),
				Offset:   c.Int("offset"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// timelineCmd creates the timeline command.
func timelineCmd(lib *content.Library) *cli.Command {
	return &cli.Command{
		Name:  "timeline",
		Usage: "Lay out careers as a gantt chart",
		Flags: append(filterFlags(),
			&cli.StringFlag{Name: "now", Usage: "Reference date for open careers (default: today)"},
		),
		Action: func(c *cli.Context) error {
			input := ops.TimelineInput{Criteria: criteriaFromFlags(c)}
			if s := c.String("now"); s != "" {
				now, ok := facet.ParseDate(s)
				if !ok {
					return outputError(errors.NewInvalidRequest("invalid --now date: " + s))
				}
				input.Now = now
			}

			output, err := ops.Timeline(lib, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// browseCmd creates the browse command.
func browseCmd(lib *content.Library, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "Browse a listing interactively",
		ArgsUsage: "<" + strings.Join(content.ListingNames, "|") + ">",
		Flags:     filterFlags(),
		Action: func(c *cli.Context) error {
			name, err := listingArg(c)
			if err != nil {
				return outputError(err)
			}

			err = tui.Run(lib, name, tui.Options{
				Initial: criteriaFromFlags(c).Values(),
				Delay:   cfg.SearchDebounce(),
			})
			if err != nil {
				return outputError(err)
			}
			return nil
		},
	}
}

// toolsCmd creates the tools command.
func toolsCmd(lib *content.Library) *cli.Command {
	return &cli.Command{
		Name:      "tools",
		Usage:     "Show the tool catalog, or one tool by id",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category"},
			&cli.StringFlag{Name: "q", Aliases: []string{"query"}, Usage: "Free-text search"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				output, err := ops.ToolLookup(c.Args().First())
				if err != nil {
					return outputError(err)
				}
				return outputJSON(output)
			}

			output, err := ops.List(lib, ops.ListInput{
				Listing:  content.ListingTools,
				Criteria: facet.Criteria{Query: c.String("q"), Type: c.String("category")},
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// encounterCmd creates the encounter command group.
func encounterCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "encounter",
		Usage: "Inspect visitor encounter records",
		Subcommands: []*cli.Command{
			{
				Name:      "record",
				Usage:     "Record a visit",
				ArgsUsage: "<visitor-id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "at", Usage: "Where the visitor came from (first visit only)"},
				},
				Action: func(c *cli.Context) error {
					output, err := ops.RecordEncounter(c.Context, db, ops.EncounterInput{
						VisitorID: c.Args().First(),
						At:        c.String("at"),
					})
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:      "show",
				Usage:     "Show a visitor's record",
				ArgsUsage: "<visitor-id>",
				Action: func(c *cli.Context) error {
					output, err := ops.FetchEncounter(c.Context, db, c.Args().First())
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
			{
				Name:  "stats",
				Usage: "Count visitors by where they came from",
				Action: func(c *cli.Context) error {
					output, err := ops.EncounterStats(c.Context, db)
					if err != nil {
						return outputError(err)
					}
					return outputJSON(output)
				},
			},
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var fErr *errors.FolioError
	if stderrors.As(err, &fErr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", fErr.Code, fErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
