/*
 * Copyright 2024 CloudWeGo Authors
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

package ring

import "github.com/cloudwego/alias/alias"

// Ring is a GC friendly ring implementation.
// It is a cyclic view over a slice and cannot be resized.
// Items share storage with the slice, and can be read and modified through any number of holders.
type Ring[T alias.Plain] struct {
	cells alias.Cells[T]
}

// Item is a position in the Ring.
type Item[T alias.Plain] struct {
	cell *alias.Cell[T]
	idx  int
}

// NewFromSlice returns a Ring over vv without copy.
// vv must not be used directly while the Ring is in use.
func NewFromSlice[T alias.Plain](vv []T) *Ring[T] {
	return &Ring[T]{cells: alias.Slice(vv)}
}

func (r *Ring[T]) item(i int) (Item[T], bool) {
	c, err := r.cells.At(i)
	if err != nil {
		return Item[T]{}, false
	}
	return Item[T]{cell: c, idx: i}, true
}

// Head returns the first item.
func (r *Ring[T]) Head() (Item[T], bool) {
	return r.item(0)
}

// Get returns the ith item.
func (r *Ring[T]) Get(i int) (Item[T], bool) {
	return r.item(i)
}

// Next returns the next item of the ith item.
// Return the first(idx=0) item if i == r.Len() - 1.
func (r *Ring[T]) Next(i int) (Item[T], bool) {
	return r.Move(i, 1)
}

// Prev returns the previous item of the ith item
// Return the last item(idx=r.Len()-1) if i == 0.
func (r *Ring[T]) Prev(i int) (Item[T], bool) {
	return r.Move(i, -1)
}

// Move returns the item moving n step from the ith item.
func (r *Ring[T]) Move(i, n int) (Item[T], bool) {
	l := r.cells.Len()
	if i < 0 || i >= l {
		return Item[T]{}, false
	}
	idx := (i + n) % l
	if idx < 0 {
		idx += l
	}
	return r.item(idx)
}

// Do calls function f on each item of the ring in forward order.
func (r *Ring[T]) Do(f func(c *alias.Cell[T])) {
	r.cells.Do(func(_ int, c *alias.Cell[T]) {
		f(c)
	})
}

// Len returns the length of the ring.
func (r *Ring[T]) Len() int {
	return r.cells.Len()
}

// Index returns the index of the item in the ring.
func (it Item[T]) Index() int {
	return it.idx
}

// Get returns the value of the item.
func (it Item[T]) Get() T {
	return it.cell.Get()
}

// Set sets the value of the item.
func (it Item[T]) Set(v T) {
	it.cell.Set(v)
}

// Cell returns the cell of the item, which may be shared freely.
func (it Item[T]) Cell() *alias.Cell[T] {
	return it.cell
}
