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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-frdict"
)

const completeLimit = 20

func newQueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "look up words in the dictionary",
		ArgsUsage: "WORD...",
		Flags: []cli.Flag{
			newDictFlag(),
			&cli.BoolFlag{
				Name:    "fold",
				Usage:   "ignore accents when matching",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:    "prefix",
				Usage:   "list words starting with each query, ignoring accents",
				Aliases: []string{"p"},
			},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return fmt.Errorf("%w: missing WORD", ErrFlagParse)
			}

			d, err := openDictionary(c)
			if err != nil {
				return err
			}

			var missing []string
			for _, q := range c.Args().Slice() {
				var entries []*frdict.Entry
				switch {
				case c.Bool("prefix"):
					entries = d.Complete(q, completeLimit)
				case c.Bool("fold"):
					entries = d.Search(q)
				default:
					if e := d.Lookup(q); e != nil {
						entries = append(entries, e)
					}
				}

				if len(entries) == 0 {
					missing = append(missing, q)
					continue
				}
				if c.Bool("prefix") {
					for _, e := range entries {
						fmt.Fprintln(c.App.Writer, e.Word())
					}
					continue
				}
				for _, e := range entries {
					printEntry(c, e)
				}
			}

			if len(missing) > 0 {
				return fmt.Errorf("%w: %s", ErrNotFound, strings.Join(missing, ", "))
			}
			return nil
		},
	}
}

func printEntry(c *cli.Context, e *frdict.Entry) {
	w := c.App.Writer
	fmt.Fprintf(w, "%s (%s)\n", e.Word(), e.Gender())

	if syntax := e.Syntax(); len(syntax) > 0 {
		tbl := table.New("POS", "Lemma", "Tag").WithWriter(w)
		for _, rec := range syntax {
			tbl.AddRow(rec.PartOfSpeech, rec.Lemma, rec.Tag)
		}
		tbl.Print()
	}

	// The first line of String is the headword.
	_, defs, _ := strings.Cut(e.String(), "\n")
	fmt.Fprint(w, defs)
	fmt.Fprintln(w)
}
