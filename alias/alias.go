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

import "github.com/cloudwego/alias/unsafex"

// One returns a cell sharing storage with *p.
//
// p MUST be the only path to its value, and MUST NOT be used again
// while the returned cell, or any copy of it, is in use.
// One(nil) returns nil.
func One[T Plain](p *T) *Cell[T] {
	return unsafex.Cast[Cell[T]](p)
}

// Slice returns cells sharing storage with the elements of s,
// with the same length and indices.
//
// s MUST be the only path to its elements, and MUST NOT be used again
// while the returned cells, or any copy of them, are in use.
func Slice[T Plain](s []T) Cells[T] {
	return Cells[T]{cells: unsafex.CastSlice[Cell[T]](s)}
}

// With calls f with One(p).
// f should not retain the cell, so that p may be used directly once f returns.
func With[T Plain](p *T, f func(c *Cell[T])) {
	f(One(p))
}

// WithSlice calls f with Slice(s).
// f should not retain the cells, so that s may be used directly once f returns.
func WithSlice[T Plain](s []T, f func(cs Cells[T])) {
	f(Slice(s))
}
