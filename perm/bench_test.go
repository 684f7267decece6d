// SPDX-License-Identifier: MIT
//
package perm

import "testing"

func BenchmarkPerm16Op(b *testing.B) {
	g, _ := FromCycles([]int{0, 3, 7})
	h, _ := FromCycles([]int{1, 5, 9})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Op(h)
	}
}

func BenchmarkPerm32Op(b *testing.B) {
	g, _ := FromCycles([]int{2, 18, 25})
	h, _ := FromCycles([]int{4, 20, 30})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Op(h)
	}
}

func BenchmarkArrayOp(b *testing.B) {
	images := make([]int, 200)
	for i := range images {
		images[i] = i
	}
	images[0], images[199] = 199, 0
	g, _ := FromImages(images)
	h, _ := FromImages(images)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Op(h)
	}
}
