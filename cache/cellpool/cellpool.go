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

// Package cellpool allocates cells from pooled memory.
package cellpool

import (
	"unsafe"

	"github.com/bytedance/gopkg/lang/mcache"

	"github.com/cloudwego/alias/alias"
	"github.com/cloudwego/alias/unsafex"
)

// Buffer holds cells backed by pooled memory.
type Buffer[T alias.Plain] struct {
	buf   []byte // nil if not from pool
	cells alias.Cells[T]
}

// Malloc returns a Buffer of n zero cells.
// Tips for usage:
// * call `Free` when the cells are no longer used, DO NOT use the cells or any copy of them after calling `Free`
// * it panics if n < 0
func Malloc[T alias.Plain](n int) *Buffer[T] {
	if n < 0 {
		panic("cellpool: negative size")
	}
	if n == 0 {
		return &Buffer[T]{}
	}
	var zero T
	b := mcache.Malloc(n * int(unsafe.Sizeof(zero)))
	if !unsafex.Aligned[T](b) {
		mcache.Free(b)
		return &Buffer[T]{cells: alias.MakeCells[T](n)}
	}
	vs := unsafex.CastSlice[T](b)
	clear(vs) // buf from pool may be dirty
	return &Buffer[T]{buf: b, cells: alias.Slice(vs)}
}

// Cells returns the cells of the Buffer.
func (b *Buffer[T]) Cells() alias.Cells[T] {
	return b.cells
}

// Len returns the number of cells.
func (b *Buffer[T]) Len() int {
	return b.cells.Len()
}

// Free returns the memory to the pool. It's safe to call Free more than once.
func (b *Buffer[T]) Free() {
	if b.buf != nil {
		mcache.Free(b.buf)
		b.buf = nil
	}
	b.cells = alias.Cells[T]{}
}
