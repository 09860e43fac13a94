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

func TestParseFunctionDeclaration(t *testing.T) {

	t.Parallel()

	t.Run("without parameters, external pure, returns string", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function helloWorld() external pure returns(string memory);",
		)
		require.Empty(t, errs)

		test_utils.AssertEqualWithDiff(t,
			&ast.FunctionDeclaration{
				Identifier: ast.Identifier{
					Identifier: "helloWorld",
					Pos:        ast.Position{Offset: 9, Line: 1, Column: 9},
				},
				ParameterList: &ast.ParameterList{
					Range: ast.Range{
						StartPos: ast.Position{Offset: 19, Line: 1, Column: 19},
						EndPos:   ast.Position{Offset: 20, Line: 1, Column: 20},
					},
				},
				Modifiers: &ast.FunctionModifiers{
					Visibility:    ast.VisibilityExternal,
					VisibilityPos: &ast.Position{Offset: 22, Line: 1, Column: 22},
					Mutability:    ast.MutabilityPure,
					MutabilityPos: &ast.Position{Offset: 31, Line: 1, Column: 31},
				},
				Returns: &ast.ReturnsClause{
					Entries: []*ast.Parameter{
						{
							Type: &ast.NominalType{
								Identifier: ast.Identifier{
									Identifier: "string",
									Pos:        ast.Position{Offset: 44, Line: 1, Column: 44},
								},
							},
							Location: ast.DataLocationMemory,
							Range: ast.Range{
								StartPos: ast.Position{Offset: 44, Line: 1, Column: 44},
								EndPos:   ast.Position{Offset: 56, Line: 1, Column: 56},
							},
						},
					},
					Range: ast.Range{
						StartPos: ast.Position{Offset: 36, Line: 1, Column: 36},
						EndPos:   ast.Position{Offset: 57, Line: 1, Column: 57},
					},
				},
				SemicolonPos: ast.Position{Offset: 58, Line: 1, Column: 58},
			},
			result,
		)

		assert.False(t, result.IsVoid())
		assert.Equal(t, "helloWorld()", result.Signature())
		assert.Empty(t, result.CallType().Types)
	})

	t.Run("one parameter, public", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function foo(uint256 a) public;",
		)
		require.Empty(t, errs)

		test_utils.AssertEqualWithDiff(t,
			&ast.FunctionDeclaration{
				Identifier: ast.Identifier{
					Identifier: "foo",
					Pos:        ast.Position{Offset: 9, Line: 1, Column: 9},
				},
				ParameterList: &ast.ParameterList{
					Parameters: []*ast.Parameter{
						{
							Type: &ast.NominalType{
								Identifier: ast.Identifier{
									Identifier: "uint256",
									Pos:        ast.Position{Offset: 13, Line: 1, Column: 13},
								},
							},
							Identifier: &ast.Identifier{
								Identifier: "a",
								Pos:        ast.Position{Offset: 21, Line: 1, Column: 21},
							},
							Range: ast.Range{
								StartPos: ast.Position{Offset: 13, Line: 1, Column: 13},
								EndPos:   ast.Position{Offset: 21, Line: 1, Column: 21},
							},
						},
					},
					Range: ast.Range{
						StartPos: ast.Position{Offset: 12, Line: 1, Column: 12},
						EndPos:   ast.Position{Offset: 22, Line: 1, Column: 22},
					},
				},
				Modifiers: &ast.FunctionModifiers{
					Visibility:    ast.VisibilityPublic,
					VisibilityPos: &ast.Position{Offset: 24, Line: 1, Column: 24},
				},
				SemicolonPos: ast.Position{Offset: 30, Line: 1, Column: 30},
			},
			result,
		)

		assert.True(t, result.IsVoid())
		assert.Equal(t, "foo(uint256)", result.Signature())
	})

	t.Run("two parameters, returns bool", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function bar(uint256 a, address b) external returns(bool);",
		)
		require.Empty(t, errs)

		assert.False(t, result.IsVoid())
		assert.Equal(t, "bar(uint256,address)", result.Signature())
		assert.Equal(t, "(uint256,address)", result.CallType().String())
	})

	t.Run("body instead of modifiers", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function baz() { }")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DeclarationBodyError{
					Pos: ast.Position{Offset: 15, Line: 1, Column: 15},
				},
			},
			errs,
		)
	})

	t.Run("body instead of terminator", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function baz() public { }")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DeclarationBodyError{
					Pos: ast.Position{Offset: 22, Line: 1, Column: 22},
				},
			},
			errs,
		)
	})

	t.Run("missing terminator", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() external")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected token ';', got EOF",
					Pos:     ast.Position{Offset: 21, Line: 1, Column: 21},
				},
			},
			errs,
		)
	})

	t.Run("keyword as name", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function function() external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected identifier after start of function declaration, " +
						"got keyword `function`",
					Pos: ast.Position{Offset: 9, Line: 1, Column: 9},
				},
			},
			errs,
		)
	})

	t.Run("missing parameter list", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected '(' as start of parameter list, got identifier",
					Pos:     ast.Position{Offset: 11, Line: 1, Column: 11},
				},
			},
			errs,
		)
	})

	t.Run("trailing comma in parameter list", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f(uint256 a,) external;")
		require.Empty(t, errs)

		assert.True(t, result.ParameterList.TrailingSeparator)
		assert.Equal(t, "(uint256,)", result.CallType().String())
	})

	t.Run("missing comma between parameters", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f(uint256 a address b) external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected comma or end of parameter list, got identifier",
					Pos:     ast.Position{Offset: 21, Line: 1, Column: 21},
				},
			},
			errs,
		)
	})

	t.Run("unclosed parameter list", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f(uint256 a")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "missing ')' at end of parameter list",
					Pos:     ast.Position{Offset: 20, Line: 1, Column: 20},
				},
			},
			errs,
		)
	})
}

func TestParseFunctionModifiers(t *testing.T) {

	t.Parallel()

	t.Run("virtual and override with bases", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function f() internal virtual override(Base1, Base2);",
		)
		require.Empty(t, errs)

		test_utils.AssertEqualWithDiff(t,
			&ast.FunctionModifiers{
				Visibility:    ast.VisibilityInternal,
				VisibilityPos: &ast.Position{Offset: 13, Line: 1, Column: 13},
				Virtual:       true,
				VirtualPos:    &ast.Position{Offset: 22, Line: 1, Column: 22},
				Override: &ast.OverrideSpecifier{
					Overrides: []*ast.NominalType{
						{
							Identifier: ast.Identifier{
								Identifier: "Base1",
								Pos:        ast.Position{Offset: 39, Line: 1, Column: 39},
							},
						},
						{
							Identifier: ast.Identifier{
								Identifier: "Base2",
								Pos:        ast.Position{Offset: 46, Line: 1, Column: 46},
							},
						},
					},
					Range: ast.Range{
						StartPos: ast.Position{Offset: 30, Line: 1, Column: 30},
						EndPos:   ast.Position{Offset: 51, Line: 1, Column: 51},
					},
				},
			},
			result.Modifiers,
		)
	})

	t.Run("bare override", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f() external override;")
		require.Empty(t, errs)

		require.NotNil(t, result.Modifiers.Override)
		assert.Nil(t, result.Modifiers.Override.Overrides)
	})

	t.Run("modifier invocations", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function withdraw() external onlyOwner costs(2);",
		)
		require.Empty(t, errs)

		test_utils.AssertEqualWithDiff(t,
			[]*ast.ModifierInvocation{
				{
					Identifier: ast.Identifier{
						Identifier: "onlyOwner",
						Pos:        ast.Position{Offset: 29, Line: 1, Column: 29},
					},
					EndPos: ast.Position{Offset: 37, Line: 1, Column: 37},
				},
				{
					Identifier: ast.Identifier{
						Identifier: "costs",
						Pos:        ast.Position{Offset: 39, Line: 1, Column: 39},
					},
					Arguments: []ast.Expression{
						&ast.IntegerExpression{
							Value: big.NewInt(2),
							Range: ast.Range{
								StartPos: ast.Position{Offset: 45, Line: 1, Column: 45},
								EndPos:   ast.Position{Offset: 45, Line: 1, Column: 45},
							},
						},
					},
					EndPos: ast.Position{Offset: 46, Line: 1, Column: 46},
				},
			},
			result.Modifiers.Invocations,
		)
	})

	t.Run("second visibility modifier", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() public external;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DuplicateVisibilityModifierError{
					Keyword: "external",
					Pos:     ast.Position{Offset: 20, Line: 1, Column: 20},
				},
			},
			errs,
		)
	})

	t.Run("second mutability modifier", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() pure view;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DuplicateMutabilityModifierError{
					Keyword: "view",
					Pos:     ast.Position{Offset: 18, Line: 1, Column: 18},
				},
			},
			errs,
		)
	})

	t.Run("second virtual modifier", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() virtual virtual;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DuplicateModifierError{
					Keyword: "virtual",
					Pos:     ast.Position{Offset: 21, Line: 1, Column: 21},
				},
			},
			errs,
		)
	})

	t.Run("second override modifier", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() override override;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&DuplicateModifierError{
					Keyword: "override",
					Pos:     ast.Position{Offset: 22, Line: 1, Column: 22},
				},
			},
			errs,
		)
	})
}

func TestParseReturnsClause(t *testing.T) {

	t.Parallel()

	t.Run("absent", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f() external;")
		require.Empty(t, errs)

		assert.Nil(t, result.Returns)
		assert.True(t, result.IsVoid())
	})

	t.Run("present and empty", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f() external returns();")
		require.Empty(t, errs)

		require.NotNil(t, result.Returns)
		assert.True(t, result.Returns.IsEmpty())
		assert.True(t, result.IsVoid())
	})

	t.Run("missing paren after keyword", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclaration("function f() external returns bool;")
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "expected '(' after `returns`, got identifier",
					Pos:     ast.Position{Offset: 30, Line: 1, Column: 30},
				},
			},
			errs,
		)
	})

	t.Run("named entries", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function f() external returns(bool ok, uint256 value);",
		)
		require.Empty(t, errs)

		require.NotNil(t, result.Returns)
		require.Len(t, result.Returns.Entries, 2)
		assert.Equal(t, "ok", result.Returns.Entries[0].Identifier.Identifier)
		assert.Equal(t, "value", result.Returns.Entries[1].Identifier.Identifier)
		assert.False(t, result.IsVoid())
	})
}

func TestParseDecorators(t *testing.T) {

	t.Parallel()

	t.Run("with string argument", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			`@external_binding("v2") function ping() external;`,
		)
		require.Empty(t, errs)

		test_utils.AssertEqualWithDiff(t,
			[]*ast.Decorator{
				{
					Identifier: ast.Identifier{
						Identifier: "external_binding",
						Pos:        ast.Position{Offset: 1, Line: 1, Column: 1},
					},
					Arguments: []ast.Expression{
						&ast.StringExpression{
							Value: "v2",
							Range: ast.Range{
								StartPos: ast.Position{Offset: 18, Line: 1, Column: 18},
								EndPos:   ast.Position{Offset: 21, Line: 1, Column: 21},
							},
						},
					},
					StartPos: ast.Position{Offset: 0, Line: 1, Column: 0},
					EndPos:   ast.Position{Offset: 22, Line: 1, Column: 22},
				},
			},
			result.Decorators,
		)
	})

	t.Run("without argument list", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("@payable_fallback function f() external;")
		require.Empty(t, errs)

		require.Len(t, result.Decorators, 1)
		assert.Nil(t, result.Decorators[0].Arguments)
	})

	t.Run("disabled", func(t *testing.T) {

		t.Parallel()

		_, errs := testParseFunctionDeclarationWithConfig(
			"@tag function f() external;",
			Config{DecoratorsEnabled: false},
		)
		test_utils.AssertEqualWithDiff(t,
			[]error{
				&SyntaxError{
					Message: "decorators are not enabled",
					Pos:     ast.Position{Offset: 0, Line: 1, Column: 0},
				},
			},
			errs,
		)
	})
}

func TestParseSpan(t *testing.T) {

	t.Parallel()

	result, errs := testParseFunctionDeclaration("function foo(uint256 a) public;")
	require.Empty(t, errs)

	nameRange := ast.Range{
		StartPos: ast.Position{Offset: 9, Line: 1, Column: 9},
		EndPos:   ast.Position{Offset: 11, Line: 1, Column: 11},
	}
	assert.Equal(t, nameRange, result.Span())
	assert.Equal(t, nameRange.StartPos, result.StartPosition())

	relocated := ast.Range{
		StartPos: ast.Position{Offset: 100, Line: 4, Column: 0},
		EndPos:   ast.Position{Offset: 102, Line: 4, Column: 2},
	}
	result.SetSpan(relocated)

	assert.Equal(t, relocated, result.Span())
	assert.Equal(t, relocated.StartPos, result.StartPosition())

	// only the representative range moves, the structure stays put
	assert.Equal(t,
		ast.Position{Offset: 9, Line: 1, Column: 9},
		result.Identifier.Pos,
	)
	assert.Equal(t,
		ast.Position{Offset: 12, Line: 1, Column: 12},
		result.ParameterList.StartPos,
	)
}

func TestParseCallType(t *testing.T) {

	t.Parallel()

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f() external;")
		require.Empty(t, errs)

		callType := result.CallType()
		assert.Empty(t, callType.Types)
		assert.False(t, callType.TrailingSeparator)
		assert.Equal(t, "()", callType.String())
	})

	t.Run("single element is always a tuple", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration("function f(uint256 a) external;")
		require.Empty(t, errs)

		callType := result.CallType()
		assert.True(t, callType.TrailingSeparator)
		assert.Equal(t, "(uint256,)", callType.String())
	})

	t.Run("two elements keep their punctuation", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function qux(uint256 a, uint256 b);",
		)
		require.Empty(t, errs)

		assert.True(t, result.IsVoid())

		callType := result.CallType()
		assert.False(t, callType.TrailingSeparator)
		assert.Equal(t, "(uint256,uint256)", callType.String())

		test_utils.AssertEqualWithDiff(t,
			ast.Range{
				StartPos: ast.Position{Offset: 12, Line: 1, Column: 12},
				EndPos:   ast.Position{Offset: 33, Line: 1, Column: 33},
			},
			callType.Range,
		)
	})
}

func TestParseSelector(t *testing.T) {

	t.Parallel()

	result, errs := testParseFunctionDeclaration(
		"function transfer(address to, uint256 amount) external returns(bool);",
	)
	require.Empty(t, errs)

	assert.Equal(t, "transfer(address,uint256)", result.Signature())
	assert.Equal(t,
		[4]byte{0xa9, 0x05, 0x9c, 0xbb},
		result.Selector(),
	)
}

func TestParseProgramDeclarations(t *testing.T) {

	t.Parallel()

	t.Run("multiple declarations and stray semicolons", func(t *testing.T) {

		t.Parallel()

		program, errs := testParseProgram(`
          function totalSupply() external view returns(uint256);
          ;
          function transfer(address to, uint256 amount) external returns(bool);
        `)
		require.Empty(t, errs)

		declarations := program.FunctionDeclarations()
		require.Len(t, declarations, 2)
		assert.Equal(t, "totalSupply()", declarations[0].Signature())
		assert.Equal(t, "transfer(address,uint256)", declarations[1].Signature())
	})

	t.Run("empty", func(t *testing.T) {

		t.Parallel()

		program, errs := testParseProgram("  // nothing here\n")
		require.Empty(t, errs)

		assert.Empty(t, program.Declarations)
	})

	t.Run("comments between tokens", func(t *testing.T) {

		t.Parallel()

		result, errs := testParseFunctionDeclaration(
			"function /* name */ f() /* mods */ external;",
		)
		require.Empty(t, errs)

		assert.Equal(t, "f", result.Identifier.Identifier)
		assert.Equal(t, ast.VisibilityExternal, result.Modifiers.Visibility)
	})
}
