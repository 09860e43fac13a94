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
	"math/big"

	"github.com/turbolent/prettier"
)

// Expression covers the primitive expression forms
// allowed as decorator and modifier invocation arguments:
// identifiers, integer literals, and string literals.
type Expression interface {
	Element
	fmt.Stringer
	isExpression()
	Doc() prettier.Doc
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
}

var _ Expression = &IdentifierExpression{}

func (*IdentifierExpression) isExpression() {}

func (e *IdentifierExpression) String() string {
	return e.Identifier.Identifier
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition() Position {
	return e.Identifier.EndPosition()
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		Type string
		Range
		*Alias
	}{
		Type:  "IdentifierExpression",
		Range: NewRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IntegerExpression

type IntegerExpression struct {
	Value *big.Int
	Range
}

var _ Expression = &IntegerExpression{}

func (*IntegerExpression) isExpression() {}

func (e *IntegerExpression) String() string {
	return e.Value.String()
}

func (e *IntegerExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *IntegerExpression) MarshalJSON() ([]byte, error) {
	type Alias IntegerExpression
	return json.Marshal(&struct {
		Type  string
		Value string
		*Alias
	}{
		Type:  "IntegerExpression",
		Value: e.Value.String(),
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func (*StringExpression) isExpression() {}

func (e *StringExpression) String() string {
	return fmt.Sprintf("%q", e.Value)
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(e.String())
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		Type string
		*Alias
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}
