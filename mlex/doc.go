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

// Package mlex implements reading morphological lexicons in the tab separated
// .mlex format used by the Lefff.
//
// Each line of an .mlex file is one record made of exactly four fields
// separated by a tab character:
//  1. The inflected word form.
//  2. The part of speech (e.g. "nc", "v", "adj").
//  3. The lemma, the dictionary form of the word.
//  4. The morphosyntactic tag (e.g. "ms", "P3s").
package mlex
