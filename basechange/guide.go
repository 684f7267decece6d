// SPDX-License-Identifier: MIT
//
package basechange

// BaseGuide advises, at each step of a base change, which point
// should come next: given the points already fixed and a set of easy
// candidates (typically the orbit of the level currently being
// examined), it names the preferred one. ok=false means the guide has
// no further preference, ending the walk early — Swap keeps whatever
// base remains from that point on.
type BaseGuide interface {
	NextBasePoint(fixed []int, candidates []int) (point int, ok bool)
}

// matchBaseGuide drives the chain toward matching target exactly,
// point by point.
type matchBaseGuide struct {
	target []int
}

// MatchBase returns a guide that insists on target, in order, as the
// new base — useful when a caller needs a specific base for a later
// comparison (e.g. intersecting two chains over the same base).
func MatchBase(target []int) BaseGuide {
	return &matchBaseGuide{target: append([]int(nil), target...)}
}

func (g *matchBaseGuide) NextBasePoint(fixed []int, candidates []int) (int, bool) {
	idx := len(fixed)
	if idx >= len(g.target) {
		return 0, false
	}
	want := g.target[idx]
	for _, c := range candidates {
		if c == want {
			return want, true
		}
	}
	return 0, false
}

// preferPointsGuide advances any candidate lying in a preferred set
// ahead of the rest, without insisting on a specific final base —
// e.g. preferring points lying in one block of a partition so the
// search over that partition's stabilizer prunes earlier.
type preferPointsGuide struct {
	preferred map[int]bool
}

// PreferPoints returns a guide that, at each step, prefers the first
// not-yet-fixed candidate lying in points (in candidate order), and
// declines to express a preference otherwise.
func PreferPoints(points []int) BaseGuide {
	set := make(map[int]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return &preferPointsGuide{preferred: set}
}

func (g *preferPointsGuide) NextBasePoint(fixed []int, candidates []int) (int, bool) {
	already := make(map[int]bool, len(fixed))
	for _, f := range fixed {
		already[f] = true
	}
	for _, c := range candidates {
		if g.preferred[c] && !already[c] {
			return c, true
		}
	}
	return 0, false
}
