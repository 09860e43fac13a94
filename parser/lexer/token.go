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

package lexer

import (
	"github.com/solbind/soldecl/ast"
)

type Token struct {
	Type TokenType
	// Value is the source text for identifier and number tokens,
	// the decoded content for string tokens,
	// and a description for error tokens
	Value string
	ast.Range
}

func (t Token) Is(tokenType TokenType) bool {
	return t.Type == tokenType
}
