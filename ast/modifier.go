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

	"github.com/turbolent/prettier"

	"github.com/solbind/soldecl/errors"
)

// Visibility

type Visibility uint

const (
	VisibilityNotSpecified Visibility = iota
	VisibilityExternal
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

func (v Visibility) Keyword() string {
	switch v {
	case VisibilityNotSpecified:
		return ""
	case VisibilityExternal:
		return "external"
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityPrivate:
		return "private"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) String() string {
	switch v {
	case VisibilityNotSpecified:
		return "VisibilityNotSpecified"
	case VisibilityExternal:
		return "VisibilityExternal"
	case VisibilityPublic:
		return "VisibilityPublic"
	case VisibilityInternal:
		return "VisibilityInternal"
	case VisibilityPrivate:
		return "VisibilityPrivate"
	}

	panic(errors.NewUnreachableError())
}

func (v Visibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Mutability

type Mutability uint

const (
	MutabilityNotSpecified Mutability = iota
	MutabilityPure
	MutabilityView
	MutabilityPayable
)

func (m Mutability) Keyword() string {
	switch m {
	case MutabilityNotSpecified:
		return ""
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	}

	panic(errors.NewUnreachableError())
}

func (m Mutability) String() string {
	switch m {
	case MutabilityNotSpecified:
		return "MutabilityNotSpecified"
	case MutabilityPure:
		return "MutabilityPure"
	case MutabilityView:
		return "MutabilityView"
	case MutabilityPayable:
		return "MutabilityPayable"
	}

	panic(errors.NewUnreachableError())
}

func (m Mutability) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// OverrideSpecifier

// OverrideSpecifier is an `override` modifier,
// optionally listing the overridden bases, e.g. `override(Base1, Base2)`
type OverrideSpecifier struct {
	// Overrides is nil if no base list was written
	Overrides []*NominalType `json:",omitempty"`
	Range
}

var _ HasPosition = &OverrideSpecifier{}

const overrideKeywordDoc = prettier.Text("override")

func (s *OverrideSpecifier) Doc() prettier.Doc {
	if s.Overrides == nil {
		return overrideKeywordDoc
	}

	doc := prettier.Concat{
		overrideKeywordDoc,
		prettier.Text("("),
	}
	for i, base := range s.Overrides {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, base.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (s *OverrideSpecifier) MarshalJSON() ([]byte, error) {
	type Alias OverrideSpecifier
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "OverrideSpecifier",
		Alias: (*Alias)(s),
	})
}

// ModifierInvocation

// ModifierInvocation is a named modifier applied to a declaration,
// e.g. `onlyOwner` or `costs(2)`
type ModifierInvocation struct {
	Identifier Identifier
	// Arguments is nil if no argument list was written
	Arguments []Expression `json:",omitempty"`
	EndPos    Position     `json:"-"`
}

var _ HasPosition = &ModifierInvocation{}

func (m *ModifierInvocation) StartPosition() Position {
	return m.Identifier.StartPosition()
}

func (m *ModifierInvocation) EndPosition() Position {
	return m.EndPos
}

func (m *ModifierInvocation) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(m.Identifier.Identifier),
	}

	if m.Arguments == nil {
		return doc
	}

	doc = append(doc, prettier.Text("("))
	for i, argument := range m.Arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, argument.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (m *ModifierInvocation) MarshalJSON() ([]byte, error) {
	type Alias ModifierInvocation
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "ModifierInvocation",
		Range: NewRangeFromPositioned(m),
		Alias: (*Alias)(m),
	})
}

// FunctionModifiers

// FunctionModifiers is the composite modifier set of a declaration:
// visibility, state mutability, the virtual flag, an optional override
// specifier, and zero or more named modifier invocations.
type FunctionModifiers struct {
	Visibility    Visibility
	VisibilityPos *Position `json:"-"`
	Mutability    Mutability
	MutabilityPos *Position `json:"-"`
	Virtual       bool
	VirtualPos    *Position             `json:"-"`
	Override      *OverrideSpecifier    `json:",omitempty"`
	Invocations   []*ModifierInvocation `json:",omitempty"`
}

func (m *FunctionModifiers) IsEmpty() bool {
	return m.Visibility == VisibilityNotSpecified &&
		m.Mutability == MutabilityNotSpecified &&
		!m.Virtual &&
		m.Override == nil &&
		len(m.Invocations) == 0
}

const virtualKeywordDoc = prettier.Text("virtual")

// Doc renders the modifier set in canonical order:
// visibility, mutability, virtual, override, then invocations.
func (m *FunctionModifiers) Doc() prettier.Doc {
	var doc prettier.Concat

	appendSeparated := func(part prettier.Doc) {
		if len(doc) > 0 {
			doc = append(doc, prettier.Space)
		}
		doc = append(doc, part)
	}

	if m.Visibility != VisibilityNotSpecified {
		appendSeparated(prettier.Text(m.Visibility.Keyword()))
	}
	if m.Mutability != MutabilityNotSpecified {
		appendSeparated(prettier.Text(m.Mutability.Keyword()))
	}
	if m.Virtual {
		appendSeparated(virtualKeywordDoc)
	}
	if m.Override != nil {
		appendSeparated(m.Override.Doc())
	}
	for _, invocation := range m.Invocations {
		appendSeparated(invocation.Doc())
	}

	return doc
}

func (m *FunctionModifiers) MarshalJSON() ([]byte, error) {
	type Alias FunctionModifiers
	return json.Marshal(&struct {
		*Alias
	}{
		Alias: (*Alias)(m),
	})
}
