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
)

func newInfoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "print dictionary statistics",
		Flags: []cli.Flag{
			newDictFlag(),
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("%w: unexpected arguments: %v", ErrFlagParse, c.Args().Slice())
			}

			d, err := openDictionary(c)
			if err != nil {
				return err
			}

			var syntax, defs, masculine, feminine int
			for _, e := range d.Entries() {
				syntax += len(e.Syntax())
				defs += len(e.Definitions())
				switch e.Gender() {
				case frdict.GenderMasculine:
					masculine++
				case frdict.GenderFeminine:
					feminine++
				case frdict.GenderUnknown:
				}
			}

			table.New("Entries", "Syntax", "Definitions", "Masculine", "Feminine").
				WithWriter(c.App.Writer).
				AddRow(d.Len(), syntax, defs, masculine, feminine).
				Print()
			return nil
		},
	}
}
