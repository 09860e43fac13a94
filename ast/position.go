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

import "fmt"

// Position defines a row/column within a source
type Position struct {
	// offset, starting at 0 (byte count)
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

func (position Position) Shifted(length int) Position {
	return Position{
		Offset: position.Offset + length,
		Line:   position.Line,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d:%d", position.Line, position.Column)
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

var EmptyPosition = Position{}

// Range

type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition() Position {
	return e.EndPos
}

// NewRangeFromPositioned constructs the range covering
// the given element's start and end positions.
func NewRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(),
	}
}

// HasPosition is implemented by all elements with a source range
type HasPosition interface {
	StartPosition() Position
	EndPosition() Position
}
