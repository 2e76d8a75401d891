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

import "fmt"

// Plain is the set of types a Cell may hold.
// Values of these types have no pointers and no invariants,
// so they can be copied and overwritten bit by bit.
type Plain interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Cell is a mutable memory location reachable through shared pointers.
// A Cell[T] has the same size, alignment and bit layout as T.
//
// The value inside is only ever copied in or out; there is no way to
// obtain a pointer into a Cell.
type Cell[T Plain] struct {
	v T
}

// New returns a cell holding v.
func New[T Plain](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Get returns a copy of the value.
func (c *Cell[T]) Get() T {
	return c.v
}

// Set overwrites the value.
func (c *Cell[T]) Set(v T) {
	c.v = v
}

// Replace sets v and returns the previous value.
func (c *Cell[T]) Replace(v T) T {
	old := c.v
	c.v = v
	return old
}

// Swap exchanges the values of c and o.
func (c *Cell[T]) Swap(o *Cell[T]) {
	if c == o {
		return
	}
	c.v, o.v = o.v, c.v
}

// Take returns the value and leaves the zero value in its place.
func (c *Cell[T]) Take() T {
	var zero T
	return c.Replace(zero)
}

// Update sets the value to f(c.Get()) and returns it.
func (c *Cell[T]) Update(f func(T) T) T {
	v := f(c.v)
	c.v = v
	return v
}

func (c *Cell[T]) String() string {
	return fmt.Sprint(c.v)
}
