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

import (
	"container/ring"
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudwego/alias/alias"
)

func newRandomValue(n int) []int {
	vs := make([]int, 0, n)
	for i := 0; i < n; i++ {
		vs = append(vs, rand.Intn(n))
	}
	return vs
}

func newStdRing(vs []int) *ring.Ring {
	r := ring.New(len(vs))
	for i := 0; i < len(vs); i++ {
		r.Value = &vs[i]
		r = r.Next()
	}
	return r
}

func TestRing(t *testing.T) {
	n := 100
	vs := newRandomValue(n)
	expect := append([]int(nil), vs...)

	r := NewFromSlice(vs)
	assert.Equal(t, n, r.Len())
	// Get
	for i := 0; i < n; i++ {
		it, ok := r.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i, it.Index())
		assert.Equal(t, expect[i], it.Get())
	}
	_, ok := r.Get(n)
	assert.False(t, ok)
	// Next
	curr, ok := r.Head()
	assert.True(t, ok)
	h, _ := r.Get(0)
	assert.Equal(t, curr, h)
	for i := 0; i < n; i++ {
		next, ok := r.Next(curr.Index())
		assert.True(t, ok)
		curr = next
	}
	assert.Equal(t, curr, h) // back to head
	_, ok = r.Next(n + 1)
	assert.False(t, ok)
	// Prev
	for i := 0; i < n; i++ {
		prev, ok := r.Prev(curr.Index())
		assert.True(t, ok)
		curr = prev
	}
	assert.Equal(t, curr, h) // back to head
	_, ok = r.Prev(n + 1)
	assert.False(t, ok)
	// Do
	var (
		expectedTotal int
		actualTotal   int
	)
	r.Do(func(c *alias.Cell[int]) {
		actualTotal += c.Get()
	})
	for i := 0; i < n; i++ {
		expectedTotal += expect[i]
	}
	assert.Equal(t, expectedTotal, actualTotal)
	// Modify
	for i := 0; i < n; i++ {
		it, ok := r.Get(i)
		assert.True(t, ok)
		it.Set(i)
		assert.Equal(t, i, it.Get())
		assert.Equal(t, i, it.Cell().Get())
		assert.Equal(t, i, vs[i]) // shares storage with vs
	}
}

func TestEmpty(t *testing.T) {
	r := NewFromSlice[int](nil)
	assert.Equal(t, 0, r.Len())
	_, ok := r.Head()
	assert.False(t, ok)
	_, ok = r.Move(0, 1)
	assert.False(t, ok)
}

func TestMove(t *testing.T) {
	n := 100
	vs := newRandomValue(n)
	r := NewFromSlice(vs)

	realNext, _ := r.Move(98, 2)
	expectedNext, _ := r.Get(0)
	assert.Equal(t, realNext, expectedNext)

	realNext, _ = r.Move(98, n+1)
	expectedNext, _ = r.Get(99)
	assert.Equal(t, realNext, expectedNext)

	realNext, _ = r.Move(1, -2)
	expectedNext, _ = r.Get(99)
	assert.Equal(t, realNext, expectedNext)

	realNext, _ = r.Move(1, -(2 + n))
	expectedNext, _ = r.Get(99)
	assert.Equal(t, realNext, expectedNext)

	realNext, ok := r.Move(2, -2)
	assert.True(t, ok)
	expectedNext, _ = r.Get(0)
	assert.Equal(t, realNext, expectedNext)

	realNext, ok = r.Move(2, -(2 + n))
	assert.True(t, ok)
	assert.Equal(t, realNext, expectedNext)
}

func TestSharedItems(t *testing.T) {
	vs := []uint8{0, 0, 0}
	r := NewFromSlice(vs)
	a, _ := r.Get(2)
	b, _ := r.Prev(0)
	a.Set(7)
	assert.Equal(t, uint8(7), b.Get())
	b.Cell().Update(func(v uint8) uint8 { return v + 1 })
	assert.Equal(t, uint8(8), a.Get())
	assert.Equal(t, []uint8{0, 0, 8}, vs)
}

func BenchmarkNew(b *testing.B) {
	nn := []int{100000, 400000}
	for _, n := range nn {
		vs := newRandomValue(n)

		b.Run(fmt.Sprintf("std-keysize_n_%d", n), func(b *testing.B) {
			b.ResetTimer()
			for j := 0; j < b.N; j++ {
				stdRing := newStdRing(vs)
				_ = stdRing
			}
		})
		runtime.GC()

		b.Run(fmt.Sprintf("new-keysize_n_%d", n), func(b *testing.B) {
			b.ResetTimer()
			for j := 0; j < b.N; j++ {
				newRing := NewFromSlice(vs)
				_ = newRing
			}
		})
		runtime.GC()
	}
}

func BenchmarkDo(b *testing.B) {
	nn := []int{10000, 40000}
	for _, n := range nn {
		vs := newRandomValue(n)
		b.Run(fmt.Sprintf("std-keysize_n_%d", n), func(b *testing.B) {
			b.ResetTimer()
			stdRing := newStdRing(vs)
			for j := 0; j < b.N; j++ {
				stdRing.Do(func(i any) {})
			}
		})
		runtime.GC()

		b.Run(fmt.Sprintf("new-keysize_n_%d", n), func(b *testing.B) {
			b.ResetTimer()
			newRing := NewFromSlice(vs)
			for j := 0; j < b.N; j++ {
				newRing.Do(func(c *alias.Cell[int]) {})
			}
		})
		runtime.GC()
	}
}

func BenchmarkGC(b *testing.B) {
	nn := []int{100000, 400000}
	for _, n := range nn {
		vs := newRandomValue(n)

		b.Run(fmt.Sprintf("std-keysize_n_%d", n), func(b *testing.B) {
			stdRing := newStdRing(vs)
			b.ResetTimer()
			for j := 0; j < b.N; j++ {
				runtime.GC()
			}
			runtime.KeepAlive(stdRing)
		})
		runtime.GC()

		b.Run(fmt.Sprintf("new-keysize_n_%d", n), func(b *testing.B) {
			newRing := NewFromSlice(vs)
			b.ResetTimer()
			for j := 0; j < b.N; j++ {
				runtime.GC()
			}
			runtime.KeepAlive(newRing)
		})
		runtime.GC()
	}
}
