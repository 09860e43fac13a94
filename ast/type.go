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
	"fmt"
	"strings"

	"github.com/turbolent/prettier"
)

// Type

// Type is implemented by all type nodes.
// String returns the canonical textual form of the type,
// as used in ABI-style signatures:
// no whitespace, no parameter names, no data locations.
type Type interface {
	HasPosition
	fmt.Stringer
	isType()
	Doc() prettier.Doc
}

// NominalType represents a named type,
// i.e. an elementary type like `uint256` or `address`,
// or a user-defined type name.

type NominalType struct {
	Identifier        Identifier
	NestedIdentifiers []Identifier `json:",omitempty"`
}

var _ Type = &NominalType{}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Identifier.String())
	for _, identifier := range t.NestedIdentifiers {
		sb.WriteByte('.')
		sb.WriteString(identifier.String())
	}
	return sb.String()
}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition() Position {
	nestedCount := len(t.NestedIdentifiers)
	if nestedCount == 0 {
		return t.Identifier.EndPosition()
	}
	lastIdentifier := t.NestedIdentifiers[nestedCount-1]
	return lastIdentifier.EndPosition()
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (t *NominalType) MarshalJSON() ([]byte, error) {
	type Alias NominalType
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "NominalType",
		Range: NewRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// VariableSizedType is a dynamically sized array type, e.g. `uint256[]`

type VariableSizedType struct {
	Type Type `json:"ElementType"`
	Range
}

var _ Type = &VariableSizedType{}

func (*VariableSizedType) isType() {}

func (t *VariableSizedType) String() string {
	return fmt.Sprintf("%s[]", t.Type)
}

func (t *VariableSizedType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		prettier.Text("[]"),
	}
}

func (t *VariableSizedType) MarshalJSON() ([]byte, error) {
	type Alias VariableSizedType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "VariableSizedType",
		Alias: (*Alias)(t),
	})
}

// ConstantSizedType is a fixed size array type, e.g. `bytes32[4]`

type ConstantSizedType struct {
	Type Type `json:"ElementType"`
	Size *IntegerExpression
	Range
}

var _ Type = &ConstantSizedType{}

func (*ConstantSizedType) isType() {}

func (t *ConstantSizedType) String() string {
	return fmt.Sprintf("%s[%s]", t.Type, t.Size)
}

func (t *ConstantSizedType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		prettier.Text("["),
		t.Size.Doc(),
		prettier.Text("]"),
	}
}

func (t *ConstantSizedType) MarshalJSON() ([]byte, error) {
	type Alias ConstantSizedType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ConstantSizedType",
		Alias: (*Alias)(t),
	})
}

// TupleType is an ordered, fixed-arity aggregate type, e.g. `(uint256,address)`.
//
// A single-element tuple is only distinguishable from a parenthesized type
// by its trailing separator: `(uint256,)` is a tuple, `(uint256)` is not.
// TrailingSeparator records whether the separator was written (or forced).
type TupleType struct {
	Types             []Type `json:",omitempty"`
	TrailingSeparator bool
	Range
}

var _ Type = &TupleType{}

func (*TupleType) isType() {}

func (t *TupleType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, ty := range t.Types {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ty.String())
	}
	if t.TrailingSeparator {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}

func (t *TupleType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, ty := range t.Types {
		if i > 0 {
			doc = append(doc, prettier.Text(","))
		}
		doc = append(doc, ty.Doc())
	}
	if t.TrailingSeparator {
		doc = append(doc, prettier.Text(","))
	}
	return append(doc, prettier.Text(")"))
}

func (t *TupleType) MarshalJSON() ([]byte, error) {
	type Alias TupleType
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "TupleType",
		Alias: (*Alias)(t),
	})
}
