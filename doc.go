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

// Package frdict builds and reads a French–English dictionary.
//
// A dictionary is built from two inputs:
//  1. An .mlex morphological lexicon. It is a tab separated text file with
//     one word form per line giving its part of speech, lemma and
//     morphosyntactic tag. It may be gzip or xz compressed.
//  2. A Body.data container from a macOS dictionary bundle. It holds zlib
//     compressed blocks of XML definition records.
//
// [Build] merges both inputs into a single artifact keyed by the normalized
// headword and writes it as a gzip stream. Building the same inputs twice
// gives byte for byte identical artifacts.
//
// [Open] loads an artifact for lookups. A [Dictionary] supports exact
// lookups, accent-insensitive search and segmentation of running text into
// known phrases.
package frdict
