// SPDX-License-Identifier: MIT
//
package perm

import (
	"strconv"
	"strings"

	"github.com/mcanlas/alasc/point"
)

// cycleString renders g in canonical product-of-disjoint-cycles form
// under the 0-based convention; fixed points are omitted and the
// identity renders as "()".
func cycleString(g Permutation) string {
	return cycleStringConv(g, point.ZeroBased)
}

// cycleStringConv renders g the same way as cycleString but translates
// each point through conv first, letting a 1-based caller see their
// own literals in the output.
func cycleStringConv(g Permutation, conv point.Convention) string {
	max, ok := g.SupportMax()
	if !ok {
		return "()"
	}
	visited := make([]bool, max+1)
	var sb strings.Builder
	wrote := false
	for s := 0; s <= max; s++ {
		if visited[s] || g.Image(s) == s {
			continue
		}
		cur := s
		var cycle []int
		for !visited[cur] {
			visited[cur] = true
			cycle = append(cycle, cur)
			cur = g.Image(cur)
		}
		if len(cycle) < 2 {
			continue
		}
		wrote = true
		sb.WriteByte('(')
		for i, p := range cycle {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(point.Point(p).ToExternal(conv)))
		}
		sb.WriteByte(')')
	}
	if !wrote {
		return "()"
	}
	return sb.String()
}
