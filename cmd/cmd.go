// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// appsCommand handles application record operations
func appsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "apps",
		Aliases: []string{"applications"},
		Usage:   "Manage tracked job applications",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracked applications, newest first",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "hide-rejected",
						Usage: "Hide rejected applications",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AppsList,
			},
			{
				Name:  "add",
				Usage: "Add a new application and commit it upstream",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "company",
						Usage:    "Company name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "position",
						Usage:    "Position title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Job location",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "Submission date (YYYY-MM-DD, default today)",
					},
					&cli.StringFlag{
						Name:  "notes",
						Usage: "Free-form notes",
					},
				},
				Action: r.AppsAdd,
			},
			{
				Name:  "reject",
				Usage: "Toggle the rejected flag on an application",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.AppsReject,
			},
			{
				Name:  "delete",
				Usage: "Delete an application and commit the removal",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.AppsDelete,
			},
			{
				Name:  "export",
				Usage: "Export applications to a local file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: csv, markdown or text",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
					&cli.BoolFlag{
						Name:  "hide-rejected",
						Usage: "Exclude rejected applications",
					},
				},
				Action: r.AppsExport,
			},
			{
				Name:  "search",
				Usage: "Search applications by company name",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AppsSearch,
			},
		},
	}
}

// syncCommand exposes the local sync journal
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Inspect synchronization history",
		Commands: []*cli.Command{
			{
				Name:  "log",
				Usage: "Show recent fetches and commits, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to show",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.SyncLog,
			},
		},
	}
}

// setupCommand handles configuration and journal database bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file and initialize the sync journal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for interactive tracking.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive application tracker",
		Action:  r.TUI,
	}
}
