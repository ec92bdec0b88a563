package main

import (
	"fmt"
	"log"
	"os"

	"github.com/standardbeagle/stackpath/internal/config"
	"github.com/standardbeagle/stackpath/internal/display"
	"github.com/standardbeagle/stackpath/internal/enumerate"
	"github.com/standardbeagle/stackpath/internal/graph"
	"github.com/standardbeagle/stackpath/internal/partial"
	"github.com/standardbeagle/stackpath/internal/path"
	"github.com/standardbeagle/stackpath/internal/version"

	"github.com/urfave/cli/v2"
)

func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	root := c.String("root")
	if root == "" {
		root = "."
	}

	cfg, err := config.LoadKDL(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", root, err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	if graphFlag := c.String("graph"); graphFlag != "" {
		cfg.Graph.Path = graphFlag
	}
	if c.Bool("compact") {
		cfg.Output.Format = "compact"
	}
	if c.Bool("all") {
		cfg.Output.ShowAll = true
	}

	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:    "stackpath",
		Usage:   "Enumerate partial paths over a stack graph",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root to look for .stackpath.kdl in",
				Value:   ".",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "enumerate",
				Usage: "Enumerate partial paths in a single file of a stack graph fixture",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "graph",
						Aliases:  []string{"g"},
						Usage:    "Stack graph fixture (JSON) to load",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "File handle to enumerate partial paths for",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "compact",
						Usage: "Render with idcodec-encoded identifiers instead of human-readable names",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Print every path the enumerator visits, not just complete-as-possible, productive ones",
					},
				},
				Action: enumerateCommand,
			},
			{
				Name:   "version",
				Usage:  "Print version information",
				Action: versionCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("stackpath: %v", err)
	}
}

func enumerateCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Graph.Path)
	if err != nil {
		return fmt.Errorf("failed to read graph fixture %s: %w", cfg.Graph.Path, err)
	}

	g, err := graph.LoadJSON(data)
	if err != nil {
		return fmt.Errorf("failed to load graph fixture: %w", err)
	}

	file := graph.FileHandle(c.Int("file"))
	session := partial.NewSession()

	count := 0
	enumerate.FindAllPartialPathsInFile(g, session, file, func(g graph.Graph, session *partial.Session, p path.PartialPath) {
		if !cfg.Output.ShowAll && (!p.IsCompleteAsPossible(g) || !p.IsProductive(session)) {
			return
		}
		count++
		var rendering display.Rendering
		if cfg.Output.Format == "compact" {
			rendering = display.PrepareCompact(g, session, p)
		} else {
			rendering = display.Prepare(g, session, p)
		}
		fmt.Println(rendering.String())
	})

	log.Printf("enumerated %d path(s) for file %d", count, file)
	return nil
}

func versionCommand(c *cli.Context) error {
	fmt.Println(version.FullInfo())
	return nil
}
