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

// Package unsafex reinterprets memory between types of identical layout.
// None of the functions here copy data; the results alias their inputs.
package unsafex

import "unsafe"

// Cast converts p to *To without copy.
// From and To MUST have the same size and alignment.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// CastSlice converts []From to []To without copy.
// The returned len is scaled by the size ratio of From and To,
// and cap equals len, so appending to the result always reallocates.
// To MUST NOT be a zero-sized type.
func CastSlice[To, From any](s []From) []To {
	if len(s) == 0 {
		return nil
	}
	var (
		zf From
		zt To
	)
	n := uintptr(len(s)) * unsafe.Sizeof(zf) / unsafe.Sizeof(zt)
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(s))), int(n))
}

// Bytes returns the raw bytes backing s.
// T should not contain pointers, or the bytes are meaningless outside the process.
func Bytes[T any](s []T) []byte {
	return CastSlice[byte](s)
}

// Aligned reports whether the data pointer of b is suitably aligned for T.
// An empty b is always aligned.
func Aligned[T any](b []byte) bool {
	if len(b) == 0 {
		return true
	}
	var z T
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(z) == 0
}
