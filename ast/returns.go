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

// ReturnsClause

// ReturnsClause is the optional `returns(...)` list of a declaration.
// A nil clause on a declaration means no clause was written;
// a non-nil clause with zero entries means `returns()` was written.
type ReturnsClause struct {
	// Entries are in declaration order
	Entries []*Parameter `json:",omitempty"`
	Range
}

var _ HasPosition = &ReturnsClause{}

func (c *ReturnsClause) IsEmpty() bool {
	return len(c.Entries) == 0
}

const returnsKeywordDoc = prettier.Text("returns")

func (c *ReturnsClause) Doc() prettier.Doc {
	if c.IsEmpty() {
		return prettier.Concat{
			returnsKeywordDoc,
			prettier.Text("()"),
		}
	}

	entriesDoc := prettier.Concat{
		prettier.SoftLine{},
	}

	for i, entry := range c.Entries {
		if i > 0 {
			entriesDoc = append(entriesDoc, parameterSeparatorDoc)
		}
		entriesDoc = append(entriesDoc, entry.Doc())
	}

	return prettier.Group{
		Doc: prettier.Concat{
			returnsKeywordDoc,
			prettier.Text("("),
			prettier.Indent{
				Doc: entriesDoc,
			},
			prettier.SoftLine{},
			prettier.Text(")"),
		},
	}
}

func (c *ReturnsClause) MarshalJSON() ([]byte, error) {
	type Alias ReturnsClause
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "ReturnsClause",
		Alias: (*Alias)(c),
	})
}
