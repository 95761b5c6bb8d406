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

// Package body implements reading the Body.data file of a macOS dictionary
// bundle.
//
// The format is undocumented. All integers are 32 bit little endian and all
// offsets are absolute:
//  1. At 0x40 is the length N of the data region. The region ends at 0x40+N.
//  2. Blocks start at 0x60 and follow each other until the end of the region.
//  3. A block is a length L followed by L bytes. The first 8 bytes are a
//     block header that is ignored. The remaining L-8 bytes are a zlib stream.
//  4. The inflated block is a sequence of records. A record is a length C
//     followed by C bytes of UTF-8 encoded XML.
//
// There is no record count anywhere in the file so records are found only by
// walking the length prefixes. A length that runs past the end of its buffer
// means the file is corrupt.
package body
