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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solbind/soldecl/ast"
	"github.com/solbind/soldecl/test_utils"
)

// parameterType parses a single-parameter declaration
// and returns the parameter's type
func parameterType(t *testing.T, code string) ast.Type {
	t.Helper()

	result, errs := testParseFunctionDeclaration(code)
	require.Empty(t, errs)

	require.Len(t, result.ParameterList.Parameters, 1)
	return result.ParameterList.Parameters[0].Type
}

func TestParseType(t *testing.T) {

	t.Parallel()

	t.Run("nominal", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f(uint256 a) external;")

		test_utils.AssertEqualWithDiff(t,
			&ast.NominalType{
				Identifier: ast.Identifier{
					Identifier: "uint256",
					Pos:        ast.Position{Offset: 11, Line: 1, Column: 11},
				},
			},
			result,
		)

		assert.Equal(t, "uint256", result.String())
	})

	t.Run("nominal, dotted", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f(MyLib.MyStruct memory s) external;")

		test_utils.AssertEqualWithDiff(t,
			&ast.NominalType{
				Identifier: ast.Identifier{
					Identifier: "MyLib",
					Pos:        ast.Position{Offset: 11, Line: 1, Column: 11},
				},
				NestedIdentifiers: []ast.Identifier{
					{
						Identifier: "MyStruct",
						Pos:        ast.Position{Offset: 17, Line: 1, Column: 17},
					},
				},
			},
			result,
		)

		assert.Equal(t, "MyLib.MyStruct", result.String())
	})

	t.Run("variable-sized array", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f(uint256[] a) external;")

		test_utils.AssertEqualWithDiff(t,
			&ast.VariableSizedType{
				Type: &ast.NominalType{
					Identifier: ast.Identifier{
						Identifier: "uint256",
						Pos:        ast.Position{Offset: 11, Line: 1, Column: 11},
					},
				},
				Range: ast.Range{
					StartPos: ast.Position{Offset: 11, Line: 1, Column: 11},
					EndPos:   ast.Position{Offset: 19, Line: 1, Column: 19},
				},
			},
			result,
		)

		assert.Equal(t, "uint256[]", result.String())
	})

	t.Run("constant-sized array", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f(bytes32[4] a) external;")

		test_utils.AssertEqualWithDiff(t,
			&ast.ConstantSizedType{
				Type: &ast.NominalType{
					Identifier: ast.Identifier{
						Identifier: "bytes32",
						Pos:        ast.Position{Offset: 11, Line: 1, Column: 11},
					},
				},
				Size: &ast.IntegerExpression{
					Value: big.NewInt(4),
					Range: ast.Range{
						StartPos: ast.Position{Offset: 19, Line: 1, Column: 19},
						EndPos:   ast.Position{Offset: 19, Line: 1, Column: 19},
					},
				},
				Range: ast.Range{
					StartPos: ast.Position{Offset: 11, Line: 1, Column: 11},
					EndPos:   ast.Position{Offset: 20, Line: 1, Column: 20},
				},
			},
			result,
		)

		assert.Equal(t, "bytes32[4]", result.String())
	})

	t.Run("nested arrays", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f(uint256[][4] a) external;")

		assert.Equal(t, "uint256[][4]", result.String())

		constantSized, ok := result.(*ast.ConstantSizedType)
		require.True(t, ok)

		_, ok = constantSized.Type.(*ast.VariableSizedType)
		require.True(t, ok)
	})

	t.Run("tuple", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f((uint256,address) pair) external;")

		test_utils.AssertEqualWithDiff(t,
			&ast.TupleType{
				Types: []ast.Type{
					&ast.NominalType{
						Identifier: ast.Identifier{
							Identifier: "uint256",
							Pos:        ast.Position{Offset: 12, Line: 1, Column: 12},
						},
					},
					&ast.NominalType{
						Identifier: ast.Identifier{
							Identifier: "address",
							Pos:        ast.Position{Offset: 20, Line: 1, Column: 20},
						},
					},
				},
				Range: ast.Range{
					StartPos: ast.Position{Offset: 11, Line: 1, Column: 11},
					EndPos:   ast.Position{Offset: 27, Line: 1, Column: 27},
				},
			},
			result,
		)

		assert.Equal(t, "(uint256,address)", result.String())
	})

	t.Run("one-element tuple", func(t *testing.T) {

		t.Parallel()

		result := parameterType(t, "function f((uint256,) t) external;")

		tuple, ok := result.(*ast.TupleType)
		require.True(t, ok)

		assert.True(t, tuple.TrailingSeparator)
		assert.Equal(t, "(uint256,)", tuple.String())
	})

	t.Run("keyword as type", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f(storage a) external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "invalid use of keyword `storage` as type",
					Pos:     ast.Position{Offset: 11, Line: 1, Column: 11},
				},
			},
			errs,
		)
	})

	t.Run("unclosed array type", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f(uint256[ a) external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected ']' at end of array type, got identifier",
					Pos:     ast.Position{Offset: 20, Line: 1, Column: 20},
				},
			},
			errs,
		)
	})

	t.Run("missing type", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f(,) external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected parameter or end of parameter list, got ','",
					Pos:     ast.Position{Offset: 11, Line: 1, Column: 11},
				},
			},
			errs,
		)
	})
}

func TestParseDataLocation(t *testing.T) {

	t.Parallel()

	t.Run("memory", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f(string memory s) external;")
		require.Empty(t, errs)

		parameter := result.ParameterList.Parameters[0]
		assert.Equal(t, ast.DataLocationMemory, parameter.Location)
		require.NotNil(t, parameter.Identifier)
		assert.Equal(t, "s", parameter.Identifier.Identifier)
	})

	t.Run("calldata, unnamed", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f(bytes calldata) external;")
		require.Empty(t, errs)

		parameter := result.ParameterList.Parameters[0]
		assert.Equal(t, ast.DataLocationCalldata, parameter.Location)
		assert.Nil(t, parameter.Identifier)
	})

	t.Run("location excluded from signature", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function f(string memory a, bytes calldata b) external;",
		)
		require.Empty(t, errs)

		assert.Equal(t, "f(string,bytes)", result.Signature())
	})
}
