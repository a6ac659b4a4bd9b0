package main

import (
	"io"
	"log"
	"os"

	dbcmd "github.com/dtnitsch/wordlist-builder/internal/db"
	"github.com/dtnitsch/wordlist-builder/internal/importer"
	"github.com/dtnitsch/wordlist-builder/internal/split"
	"github.com/dtnitsch/wordlist-builder/internal/verify"
	"github.com/dtnitsch/wordlist-builder/models"
	"github.com/dtnitsch/wordlist-builder/pkg/db"
	"github.com/dtnitsch/wordlist-builder/pkg/help"
	"github.com/dtnitsch/wordlist-builder/pkg/lexique"
	"github.com/dtnitsch/wordlist-builder/pkg/wordlist"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "wordlist-builder",
		Usage: "Build length-bucketed word frequency lists for word games",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only log errors",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML file with default settings",
				Value: models.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "Record runs in this SQLite ledger (runs commands default to " + db.DefaultDBName + ")",
			},
			&cli.BoolFlag{
				Name:  "no-ledger",
				Usage: "Don't record runs, even if --db or the config names a ledger",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "Print a YAML run summary to stdout",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Convert a JSON word -> probability map into a flat frequency list",
				Action: importer.ImportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "JSON word list",
						Value:   wordlist.DefaultInput,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file",
						Value:   wordlist.DefaultOutput,
					},
				},
			},
			{
				Name:   "split",
				Usage:  "Split a lexical database into one frequency list per word length",
				Action: split.SplitAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "input",
						Aliases: []string{"i"},
						Usage:   "Tab-separated lexical database",
						Value:   lexique.DefaultInput,
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "Directory for the per-length files",
						Value: ".",
					},
					&cli.StringFlag{
						Name:  "output-pattern",
						Usage: "File name pattern, %d is the word length",
						Value: lexique.DefaultOutputPattern,
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Shortest word length kept",
						Value: lexique.DefaultStartLength,
					},
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Longest word length kept",
						Value: lexique.DefaultEndLength,
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "Check that the game loads every row of the per-length files",
				Action: verify.VerifyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Directory holding the per-length files",
						Value: ".",
					},
					&cli.StringFlag{
						Name:  "output-pattern",
						Usage: "File name pattern, %d is the word length",
						Value: lexique.DefaultOutputPattern,
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Shortest word length checked",
						Value: lexique.GameMinLength,
					},
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Longest word length checked",
						Value: lexique.GameMaxLength,
					},
				},
			},
			{
				Name:   "runs",
				Usage:  "List recorded runs",
				Action: dbcmd.RunsAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to list",
						Value: 20,
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "Show a run and its output files (latest if no ID)",
						ArgsUsage: "[run-id]",
						Action:    dbcmd.RunAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start guide",
				Action: func(c *cli.Context) error {
					io.WriteString(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
