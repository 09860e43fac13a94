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

// Package ast contains the AST nodes of the Solbind
// contract description language.
// All nodes have position information,
// render to a prettier document for diagnostics,
// and implement the json.Marshaler interface
// so can be serialized to a standardized/stable JSON format.
package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

// Element is implemented by all AST nodes
type Element interface {
	HasPosition
}

// Declaration is implemented by all top-level declaration nodes
type Declaration interface {
	Element
	isDeclaration()
	DeclarationIdentifier() *Identifier
	Doc() prettier.Doc
}

const prettierMaxLineWidth = 80
const prettierIndent = "    "

// Prettier renders the given element's document as source text
func Prettier(element interface{ Doc() prettier.Doc }) string {
	var sb strings.Builder
	prettier.Prettier(&sb, element.Doc(), prettierMaxLineWidth, prettierIndent)
	return sb.String()
}
