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
)

// Decorator is a leading annotation attached to a declaration,
// e.g. `@deprecated` or `@selector("transfer(address,uint256)")`.
// Decorators are parsed generically and treated opaquely by the parser;
// their interpretation belongs to downstream tooling.
type Decorator struct {
	Identifier Identifier
	// Arguments is nil if no argument list was written.
	// A written-but-empty argument list is an empty, non-nil slice.
	Arguments []Expression `json:",omitempty"`
	StartPos  Position     `json:"-"`
	EndPos    Position     `json:"-"`
}

var _ Element = &Decorator{}

func (d *Decorator) StartPosition() Position {
	return d.StartPos
}

func (d *Decorator) EndPosition() Position {
	return d.EndPos
}

const decoratorStartDoc = prettier.Text("@")

func (d *Decorator) Doc() prettier.Doc {
	doc := prettier.Concat{
		decoratorStartDoc,
		prettier.Text(d.Identifier.Identifier),
	}

	if d.Arguments == nil {
		return doc
	}

	doc = append(doc, prettier.Text("("))
	for i, argument := range d.Arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, argument.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (d *Decorator) String() string {
	return Prettier(d)
}

func (d *Decorator) MarshalJSON() ([]byte, error) {
	type Alias Decorator
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "Decorator",
		Range: NewRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
