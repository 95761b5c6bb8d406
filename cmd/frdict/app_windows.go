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

//go:build windows

package main

import (
	"os"
	"path/filepath"

	"github.com/ianlewis/go-frdict/internal/config"
)

// dictLocations returns the paths searched for a dictionary when none is
// given, in order.
func dictLocations() []string {
	loc := []string{
		config.DefaultOutput,
	}

	if execPath, err := os.Executable(); err == nil {
		loc = append(loc, filepath.Join(filepath.Dir(execPath), config.DefaultOutput))
	}

	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		loc = append(loc, filepath.Join(configDir, "frdict", config.DefaultOutput))
	}

	return loc
}
