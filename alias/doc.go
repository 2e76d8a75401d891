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

// Package alias lets the sole owner of a value, or of a slice of values,
// hand out any number of references that may all read and write it.
//
// Given exclusive access to x, One(&x) returns a *Cell over the very same
// storage. The *Cell can be copied and passed around freely, and every
// holder may Get or Set the value in any order: the last Set wins.
// Slice does the same for each element of a []T, giving a fixed-length,
// bounds-checked view of cells.
//
// Both conversions are reinterpretations: nothing is allocated or copied.
// This works because a Cell[T] has exactly the layout of a T, and because
// T is restricted to Plain types, whose bits may be overwritten at will.
//
// The caller must guarantee that, while the cells are in use,
//
//   - no other path to the storage exists, including unsafe pointers, and
//   - the original *T or []T is not used directly.
//
// Cells carry no synchronization. Sharing them between goroutines requires
// external locking, exactly as for the plain value.
//
// Code that knows up front it needs shared mutation should simply store
// values in cells from the start, with New, MakeCells or CellsOf.
package alias
