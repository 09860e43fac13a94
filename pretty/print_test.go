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

package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solbind/soldecl/ast"
)

type testError struct {
	ast.Range
}

func (testError) Error() string {
	return "test error"
}

type testHintedError struct {
	ast.Range
}

func (testHintedError) Error() string {
	return "test error"
}

func (testHintedError) SecondaryError() string {
	return "test hint"
}

func TestPrintBrokenCode(t *testing.T) {

	t.Parallel()

	const code = `function foo() external;`
	lineCount := len(strings.Split(code, "\n"))

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					// NOTE: line number is after end of code
					Line:   lineCount + 2,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   lineCount,
					Column: 2,
				},
			},
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:3:0\n",
		sb.String(),
	)
}

func TestPrintTabs(t *testing.T) {

	t.Parallel()

	const code = "\t  \t   uint256 x;"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 7,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 9,
				},
			},
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:7\n"+
			"  |\n"+
			"1 | \t  \t   uint256 x;\n"+
			"  | \t  \t   ^^^\n",
		sb.String(),
	)
}

func TestPrintSecondaryError(t *testing.T) {

	t.Parallel()

	const code = "function f() { }"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testHintedError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 13,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 13,
				},
			},
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:1:13\n"+
			"  |\n"+
			"1 | function f() { }\n"+
			"  |              ^ test hint\n",
		sb.String(),
	)
}

func TestPrintWithoutPosition(t *testing.T) {

	t.Parallel()

	const code = `function foo() external;`

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.EmptyRange,
		},
		"test",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> test:0:0\n",
		sb.String(),
	)
}

func TestPrintWithoutLocation(t *testing.T) {

	t.Parallel()

	const code = "function f()"

	var sb strings.Builder
	printer := NewErrorPrettyPrinter(&sb, false)
	err := printer.PrettyPrintError(
		testError{
			Range: ast.Range{
				StartPos: ast.Position{
					Line:   1,
					Column: 0,
				},
				EndPos: ast.Position{
					Line:   1,
					Column: 7,
				},
			},
		},
		"",
		[]byte(code),
	)
	require.NoError(t, err)
	require.Equal(t,
		"error: test error\n"+
			" --> :1:0\n"+
			"  |\n"+
			"1 | function f()\n"+
			"  | ^^^^^^^^\n",
		sb.String(),
	)
}
