/*
 * Copyright 2026 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package alias

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/util/xxhash3"

	"github.com/cloudwego/alias/unsafex"
)

// ErrOutOfRange is returned when indexing Cells outside [0, Len).
var ErrOutOfRange = errors.New("alias: index out of range")

// Cells is a fixed-length sequence of cells.
// Copies of a Cells value share the same cells.
type Cells[T Plain] struct {
	cells []Cell[T]
}

// MakeCells returns n zero cells. It panics if n < 0.
func MakeCells[T Plain](n int) Cells[T] {
	return Cells[T]{cells: make([]Cell[T], n)}
}

// CellsOf returns new cells holding a copy of vs.
func CellsOf[T Plain](vs ...T) Cells[T] {
	s := MakeCells[T](len(vs))
	s.CopyFrom(vs)
	return s
}

// Len returns the number of cells.
func (s Cells[T]) Len() int {
	return len(s.cells)
}

// At returns the ith cell.
func (s Cells[T]) At(i int) (*Cell[T], error) {
	if uint(i) >= uint(len(s.cells)) {
		return nil, s.rangeError(i)
	}
	return &s.cells[i], nil
}

// Get returns the value of the ith cell.
func (s Cells[T]) Get(i int) (T, error) {
	c, err := s.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Get(), nil
}

// Set sets the value of the ith cell.
func (s Cells[T]) Set(i int, v T) error {
	c, err := s.At(i)
	if err != nil {
		return err
	}
	c.Set(v)
	return nil
}

// Swap exchanges the values of the ith and jth cells.
// Nothing is modified if either index is out of range.
func (s Cells[T]) Swap(i, j int) error {
	a, err := s.At(i)
	if err != nil {
		return err
	}
	b, err := s.At(j)
	if err != nil {
		return err
	}
	a.Swap(b)
	return nil
}

// Sub returns the cells in [lo, hi), sharing storage with s.
func (s Cells[T]) Sub(lo, hi int) (Cells[T], error) {
	if lo < 0 || hi < lo || hi > len(s.cells) {
		return Cells[T]{}, fmt.Errorf("%w: [%d:%d] with len %d", ErrOutOfRange, lo, hi, len(s.cells))
	}
	return Cells[T]{cells: s.cells[lo:hi:hi]}, nil
}

// Do calls f on each cell in index order.
func (s Cells[T]) Do(f func(i int, c *Cell[T])) {
	for i := range s.cells {
		f(i, &s.cells[i])
	}
}

// Fill sets every cell to v.
func (s Cells[T]) Fill(v T) {
	for i := range s.cells {
		s.cells[i].v = v
	}
}

// CopyTo copies values into dst and returns the number copied,
// which is the minimum of s.Len() and len(dst).
func (s Cells[T]) CopyTo(dst []T) int {
	return copy(dst, s.values())
}

// CopyFrom sets cells from src and returns the number copied,
// which is the minimum of s.Len() and len(src).
func (s Cells[T]) CopyFrom(src []T) int {
	return copy(s.values(), src)
}

// Values returns a copy of all values.
// Later changes to the cells are not reflected in the result.
func (s Cells[T]) Values() []T {
	n := len(s.cells)
	if n == 0 {
		return []T{}
	}
	var ret []T
	sz := n * int(unsafe.Sizeof(s.cells[0]))
	// the buffer is fully overwritten below, skip zeroing it.
	if b := dirtmake.Bytes(sz, sz); unsafex.Aligned[T](b) {
		ret = unsafex.CastSlice[T](b)
	} else {
		ret = make([]T, n)
	}
	s.CopyTo(ret)
	return ret
}

// Sum64 returns a hash of the bits stored in the cells.
// Cells holding the same bit patterns in the same order hash equally;
// note that for floats 0 and -0 differ while NaNs may be equal.
func (s Cells[T]) Sum64() uint64 {
	return xxhash3.Hash(unsafex.Bytes(s.cells))
}

func (s Cells[T]) values() []T {
	return unsafex.CastSlice[T](s.cells)
}

func (s Cells[T]) rangeError(i int) error {
	return fmt.Errorf("%w: index %d with len %d", ErrOutOfRange, i, len(s.cells))
}
