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
)

func newSegmentCommand() *cli.Command {
	return &cli.Command{
		Name:      "segment",
		Usage:     "find dictionary phrases in French text",
		ArgsUsage: "TEXT...",
		Flags: []cli.Flag{
			newDictFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return fmt.Errorf("%w: missing TEXT", ErrFlagParse)
			}

			d, err := openDictionary(c)
			if err != nil {
				return err
			}

			text := strings.Join(c.Args().Slice(), " ")
			tbl := table.New("Start", "End", "Phrase", "Gender").WithWriter(c.App.Writer)
			for _, p := range d.Segment(text) {
				tbl.AddRow(p.Start, p.End, p.Text, p.Entry.Gender())
			}
			tbl.Print()
			return nil
		},
	}
}
