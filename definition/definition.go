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

// Package definition implements extraction of dictionary definitions from the
// XML records of a Body.data file.
//
// Every record is one XML document whose root element carries an id
// attribute. Ids starting with "f_" are French headwords, ids starting with
// "e_" are English headwords pointing into French and are not used.
package definition

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/ianlewis/go-frdict/word"
)

// DictionaryServiceNS is the XML namespace of the Dictionary Services
// attributes. The headword of a record is the title attribute in this
// namespace.
const DictionaryServiceNS = "http://www.apple.com/DTDs/DictionaryService-1.0.rng"

const (
	frenchPrefix  = "f_"
	englishPrefix = "e_"
)

var (
	// ErrParse indicates a record that is not well formed XML.
	ErrParse = errors.New("parsing definition")

	// ErrMissingID indicates a record without an id attribute.
	ErrMissingID = errors.New("missing id attribute")

	// ErrMissingTitle indicates a French record without a title attribute.
	ErrMissingTitle = errors.New("missing title attribute")
)

// Kind classifies an extracted record.
type Kind int

const (
	// KindFrench is a French headword record that belongs in the dictionary.
	KindFrench Kind = iota

	// KindInadmissible is a French headword record whose normalized title is
	// not an admissible word.
	KindInadmissible

	// KindEnglish is an English headword record. These are skipped.
	KindEnglish

	// KindUnknown is a record with an unrecognized id prefix.
	KindUnknown
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFrench:
		return "french"
	case KindInadmissible:
		return "inadmissible"
	case KindEnglish:
		return "english"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of extracting one record.
type Result struct {
	Kind Kind

	// ID is the id attribute of the record.
	ID string

	// Title is the raw title attribute. It is only set for French records.
	Title string

	// Word is the normalized title. It is only set for KindFrench.
	Word string

	// XML is the original text of the record. It is only set for KindFrench.
	XML string
}

// Extract parses one XML record and classifies it. Malformed XML and missing
// required attributes are errors; records that are well formed but not used
// are reported through the Kind of the result.
func Extract(raw []byte) (*Result, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	root, err := rootElement(doc)
	if err != nil {
		return nil, err
	}

	id, ok := attr(root, "", "id")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: <%s>", ErrMissingID, root.Data)
	}

	r := &Result{ID: id}
	switch {
	case strings.HasPrefix(id, frenchPrefix):
		title, ok := attr(root, DictionaryServiceNS, "title")
		if !ok {
			return nil, fmt.Errorf("%w: id %q", ErrMissingTitle, id)
		}
		r.Title = title

		// An empty title normalizes to an inadmissible word.
		w := word.Normalize(title)
		if !word.IsAdmissible(w) {
			r.Kind = KindInadmissible
			return r, nil
		}
		r.Kind = KindFrench
		r.Word = w
		r.XML = string(raw)
	case strings.HasPrefix(id, englishPrefix):
		r.Kind = KindEnglish
	default:
		r.Kind = KindUnknown
	}
	return r, nil
}

// rootElement returns the document element of doc. The document must hold
// exactly one element and no text outside of it other than whitespace.
func rootElement(doc *xmlquery.Node) (*xmlquery.Node, error) {
	var root *xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		switch n.Type {
		case xmlquery.ElementNode:
			if root != nil {
				return nil, fmt.Errorf("%w: second root element <%s>", ErrParse, n.Data)
			}
			root = n
		case xmlquery.TextNode, xmlquery.CharDataNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil, fmt.Errorf("%w: text outside the root element", ErrParse)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return root, nil
}

// attr returns the value of the attribute with the given namespace URI and
// local name. An empty space matches only unqualified attributes.
func attr(n *xmlquery.Node, space, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Local == local && a.NamespaceURI == space {
			return a.Value, true
		}
	}
	return "", false
}
