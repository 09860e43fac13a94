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

// DataLocation

type DataLocation uint

const (
	DataLocationUnspecified DataLocation = iota
	DataLocationMemory
	DataLocationStorage
	DataLocationCalldata
)

func (l DataLocation) Keyword() string {
	switch l {
	case DataLocationUnspecified:
		return ""
	case DataLocationMemory:
		return "memory"
	case DataLocationStorage:
		return "storage"
	case DataLocationCalldata:
		return "calldata"
	}

	panic(errors.NewUnreachableError())
}

func (l DataLocation) String() string {
	switch l {
	case DataLocationUnspecified:
		return "DataLocationUnspecified"
	case DataLocationMemory:
		return "DataLocationMemory"
	case DataLocationStorage:
		return "DataLocationStorage"
	case DataLocationCalldata:
		return "DataLocationCalldata"
	}

	panic(errors.NewUnreachableError())
}

func (l DataLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// Parameter

// Parameter is a single typed entry of a parameter list or returns clause:
// a type, an optional data location, and an optional name.
type Parameter struct {
	Type     Type
	Location DataLocation
	// Identifier is the optional name; nil if the entry is unnamed
	Identifier *Identifier `json:",omitempty"`
	Range
}

var _ HasPosition = &Parameter{}

func (p *Parameter) Doc() prettier.Doc {
	doc := prettier.Concat{
		p.Type.Doc(),
	}
	if p.Location != DataLocationUnspecified {
		doc = append(
			doc,
			prettier.Space,
			prettier.Text(p.Location.Keyword()),
		)
	}
	if p.Identifier != nil {
		doc = append(
			doc,
			prettier.Space,
			prettier.Text(p.Identifier.Identifier),
		)
	}
	return doc
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type Alias Parameter
	return json.Marshal(&struct {
		*Alias
	}{
		Alias: (*Alias)(p),
	})
}

// ParameterList

type ParameterList struct {
	Parameters []*Parameter `json:",omitempty"`
	// TrailingSeparator records whether the source
	// had a comma after the last parameter
	TrailingSeparator bool
	Range
}

var _ HasPosition = &ParameterList{}

func (l *ParameterList) IsEmpty() bool {
	return len(l.Parameters) == 0
}

var parameterSeparatorDoc prettier.Doc = prettier.Concat{
	prettier.Text(","),
	prettier.Line{},
}

func (l *ParameterList) Doc() prettier.Doc {
	if l.IsEmpty() {
		return prettier.Text("()")
	}

	parametersDoc := prettier.Concat{
		prettier.SoftLine{},
	}

	for i, parameter := range l.Parameters {
		if i > 0 {
			parametersDoc = append(parametersDoc, parameterSeparatorDoc)
		}
		parametersDoc = append(parametersDoc, parameter.Doc())
	}

	return prettier.Group{
		Doc: prettier.Concat{
			prettier.Text("("),
			prettier.Indent{
				Doc: parametersDoc,
			},
			prettier.SoftLine{},
			prettier.Text(")"),
		},
	}
}

func (l *ParameterList) MarshalJSON() ([]byte, error) {
	type Alias ParameterList
	return json.Marshal(&struct {
		*Alias
	}{
		Alias: (*Alias)(l),
	})
}
