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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-frdict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFrdict is a parent error for all command errors.
var ErrFrdict = errors.New("frdict")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFrdict)

// ErrNoDictionary indicates that no artifact was given or found.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrFrdict)

// ErrNotFound indicates that a queried word is not in the dictionary.
var ErrNotFound = fmt.Errorf("%w: not found", ErrFrdict)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// which prints "command foo not found" for `frdict --help foo`.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func printVersion(c *cli.Context) error {
	_, err := fmt.Fprintf(c.App.Writer, "%s %s\n%s\n",
		c.App.Name,
		version.GetVersionInfo().GitVersion,
		c.App.Copyright,
	)
	return err
}

const dictFlagName = "dict"

func newDictFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    dictFlagName,
		Usage:   "read the dictionary from `FILE`",
		Aliases: []string{"d"},
	}
}

// openDictionary opens the dictionary named by the --dict flag or else the
// first one found in the default locations.
func openDictionary(c *cli.Context) (*frdict.Dictionary, error) {
	path := c.String(dictFlagName)
	if path == "" {
		for _, loc := range dictLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return nil, fmt.Errorf("%w: searched %s", ErrNoDictionary, strings.Join(dictLocations(), ", "))
	}
	return frdict.Open(path)
}

func newFrdictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Build and query a French–English dictionary.",
		Description: strings.Join([]string{
			"French–English dictionary builder written in Go.",
			"http://github.com/ianlewis/go-frdict",
		}, "\n"),
		Flags: []cli.Flag{
			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			newBuildCommand(),
			newQueryCommand(),
			newSegmentCommand(),
			newInfoCommand(),
		},
	}
}
