// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-frdict"
	"github.com/ianlewis/go-frdict/dictdata"
	"github.com/ianlewis/go-frdict/internal/config"
	"github.com/ianlewis/go-frdict/internal/logging"
)

func newBuildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "build the dictionary from a lexicon and a container",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "lexicon",
				Usage: "read the .mlex lexicon from `FILE`",
			},
			&cli.StringFlag{
				Name:  "container",
				Usage: "read the Body.data container from `FILE`",
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write the dictionary to `FILE`",
				Aliases: []string{"o"},
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output `FORMAT`: gzip or dictzip",
			},
			&cli.BoolFlag{
				Name:  "parallel",
				Usage: "read the lexicon and the container concurrently",
			},
			&cli.BoolFlag{
				Name:  "checksum",
				Usage: "write a BLAKE3 checksum file next to the output",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL`: debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT`: text or json",
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			overrideString(c, "lexicon", &cfg.Lexicon)
			overrideString(c, "container", &cfg.Container)
			overrideString(c, "output", &cfg.Output)
			overrideString(c, "format", &cfg.Format)
			overrideString(c, "log-level", &cfg.Log.Level)
			overrideString(c, "log-format", &cfg.Log.Format)
			if c.IsSet("parallel") {
				cfg.Parallel = c.Bool("parallel")
			}
			if c.IsSet("checksum") {
				cfg.Checksum = c.Bool("checksum")
			}

			format, err := dictdata.ParseFormat(cfg.Format)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			logFormat, err := logging.ParseFormat(cfg.Log.Format)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			sum, err := frdict.Build(c.Context, &frdict.BuildOptions{
				LexiconPath:   cfg.Lexicon,
				ContainerPath: cfg.Container,
				OutputPath:    cfg.Output,
				Format:        format,
				Parallel:      cfg.Parallel,
				Checksum:      cfg.Checksum,
				Logger:        logging.New(c.App.ErrWriter, level, logFormat),
			})
			if err != nil {
				return err
			}

			table.New("Output", "Entries", "Syntax", "Definitions", "Dropped", "Size", "BLAKE3").
				WithWriter(c.App.Writer).
				AddRow(
					cfg.Output,
					sum.Entries,
					sum.SyntaxRecords,
					sum.DefinitionRecords,
					sum.Lexicon.Discarded+sum.Definitions.Unknown+sum.Definitions.Inadmissible,
					sum.Size,
					sum.Digest,
				).
				Print()
			return nil
		},
	}
}

// overrideString sets *v to the value of the named flag if it was given.
func overrideString(c *cli.Context, name string, v *string) {
	if c.IsSet(name) {
		*v = c.String(name)
	}
}
