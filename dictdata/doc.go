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

// Package dictdata implements reading and writing the compiled dictionary
// data file.
//
// The file is a gzip stream. Decompressed, it holds the entries of a store in
// store order. Integers are little endian and a string is a uint32 byte length
// followed by the UTF-8 bytes:
//
//	uint32 entry count
//	for each entry:
//	  string word
//	  uint8  syntax record count
//	  for each syntax record:
//	    string part of speech
//	    string lemma, empty if equal to the word
//	    string morphosyntactic tag
//	  uint8  definition count
//	  for each definition:
//	    string definition XML
//
// Counts are a single byte so a word can have at most 255 syntax records and
// 255 definitions. Writing a store that exceeds this fails.
package dictdata
