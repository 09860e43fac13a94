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

package parser

import (
	"github.com/SaveTheRbtz/mph"

	"github.com/solbind/soldecl/ast"
)

// NOTE: ensure to update allKeywords when adding a new keyword
const (
	KeywordFunction = "function"
	KeywordReturns  = "returns"
	KeywordExternal = "external"
	KeywordPublic   = "public"
	KeywordInternal = "internal"
	KeywordPrivate  = "private"
	KeywordPure     = "pure"
	KeywordView     = "view"
	KeywordPayable  = "payable"
	KeywordVirtual  = "virtual"
	KeywordOverride = "override"
	KeywordMemory   = "memory"
	KeywordStorage  = "storage"
	KeywordCalldata = "calldata"
	// NOTE: ensure to update allKeywords when adding a new keyword
)

// Keywords that aren't allowed in identifier position.
var allKeywords = []string{
	KeywordFunction,
	KeywordReturns,
	KeywordExternal,
	KeywordPublic,
	KeywordInternal,
	KeywordPrivate,
	KeywordPure,
	KeywordView,
	KeywordPayable,
	KeywordVirtual,
	KeywordOverride,
	KeywordMemory,
	KeywordStorage,
	KeywordCalldata,
}

var keywordsTable = mph.Build(allKeywords)

func isKeyword(identifier string) bool {
	_, ok := keywordsTable.Lookup(identifier)
	return ok
}

func dataLocation(keyword string) (ast.DataLocation, bool) {
	switch keyword {
	case KeywordMemory:
		return ast.DataLocationMemory, true
	case KeywordStorage:
		return ast.DataLocationStorage, true
	case KeywordCalldata:
		return ast.DataLocationCalldata, true
	default:
		return ast.DataLocationUnspecified, false
	}
}
