/*
 * Soldecl - Parser for the Solbind contract description language
 *
 * Copyright Solbind Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"encoding/json"
	"strings"

	"github.com/turbolent/prettier"
	"golang.org/x/crypto/sha3"
)

// FunctionDeclaration

// FunctionDeclaration is a function signature declaration:
// `function helloWorld() external pure returns(string memory);`
//
// The declaration form has no implementation body;
// a body in place of the modifier set or the terminator
// is rejected during parsing.
type FunctionDeclaration struct {
	// Decorators are the leading annotations, in source order
	Decorators    []*Decorator `json:",omitempty"`
	Identifier    Identifier
	ParameterList *ParameterList
	Modifiers     *FunctionModifiers
	// Returns is nil if no `returns` clause was written.
	// A clause with zero entries is non-nil and empty.
	Returns      *ReturnsClause `json:",omitempty"`
	SemicolonPos Position       `json:"-"`

	// span overrides the representative source range, see SetSpan
	span *Range
}

var _ Element = &FunctionDeclaration{}
var _ Declaration = &FunctionDeclaration{}

func (*FunctionDeclaration) isDeclaration() {}

// Span returns the representative source range of the declaration:
// the name identifier's range, unless relocated with SetSpan.
// The range deliberately does not cover the whole declaration,
// so diagnostics for the declared symbol point at its name.
func (d *FunctionDeclaration) Span() Range {
	if d.span != nil {
		return *d.span
	}
	return NewRangeFromPositioned(d.Identifier)
}

// SetSpan relocates the representative source range.
// No other field is affected; the structural positions
// of the name, parameters, modifiers, and returns are kept.
func (d *FunctionDeclaration) SetSpan(span Range) {
	d.span = &span
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.Span().StartPos
}

func (d *FunctionDeclaration) EndPosition() Position {
	return d.Span().EndPos
}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

// IsVoid returns true if the declaration returns nothing:
// the returns clause is either absent or present with zero entries.
// The two source forms are equivalent for this query.
func (d *FunctionDeclaration) IsVoid() bool {
	return d.Returns == nil || d.Returns.IsEmpty()
}

// Signature returns the canonical signature string `name(T1,T2,...)`:
// the parameter types in declaration order, comma-separated,
// without names, data locations, or whitespace.
// This is the format ABI-style selectors are computed from.
func (d *FunctionDeclaration) Signature() string {
	var sb strings.Builder
	sb.WriteString(d.Identifier.Identifier)
	sb.WriteByte('(')
	for i, parameter := range d.ParameterList.Parameters {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(parameter.Type.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// CallType returns the declaration's argument tuple type:
// the parameter types, in order.
//
// A single-element tuple gets a forced trailing separator
// so it stays distinguishable from a parenthesized type;
// zero-element and multi-element tuples keep
// whatever separator the parse produced.
func (d *FunctionDeclaration) CallType() *TupleType {
	parameters := d.ParameterList.Parameters

	types := make([]Type, 0, len(parameters))
	for _, parameter := range parameters {
		types = append(types, parameter.Type)
	}

	trailingSeparator := d.ParameterList.TrailingSeparator
	if len(types) == 1 {
		trailingSeparator = true
	}

	return &TupleType{
		Types:             types,
		TrailingSeparator: trailingSeparator,
		Range:             NewRangeFromPositioned(d.ParameterList),
	}
}

// Selector returns the first four bytes of the Keccak-256 hash
// of the canonical signature
func (d *FunctionDeclaration) Selector() [4]byte {
	hash := sha3.NewLegacyKeccak256()
	_, _ = hash.Write([]byte(d.Signature()))

	var selector [4]byte
	copy(selector[:], hash.Sum(nil))
	return selector
}

var functionKeywordSpaceDoc = prettier.Text("function ")

// Doc renders the name, parameters, modifiers, and returns clause.
// Decorators and the terminator are omitted.
func (d *FunctionDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		functionKeywordSpaceDoc,
		prettier.Text(d.Identifier.Identifier),
		d.ParameterList.Doc(),
	}

	if d.Modifiers != nil && !d.Modifiers.IsEmpty() {
		doc = append(
			doc,
			prettier.Space,
			d.Modifiers.Doc(),
		)
	}

	if d.Returns != nil {
		doc = append(
			doc,
			prettier.Space,
			d.Returns.Doc(),
		)
	}

	return doc
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "FunctionDeclaration",
		Range: d.Span(),
		Alias: (*Alias)(d),
	})
}
