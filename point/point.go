// SPDX-License-Identifier: MIT
//
package point

import "fmt"

// Point is a non-negative integer identifying one element of the
// domain a permutation acts on. Internally every Point is 0-based;
// Convention governs only how Points are translated to and from a
// caller's textual representation.
type Point int

// Convention selects whether a caller's literal points are 0-based or
// 1-based. Internal storage and arithmetic are always 0-based;
// Convention only affects ToExternal/FromExternal at the boundary.
type Convention int

const (
	// ZeroBased means external literals already match internal Points.
	ZeroBased Convention = iota
	// OneBased means external literal k corresponds to internal Point k-1.
	OneBased
)

// FromExternal converts a caller-supplied literal under c into an
// internal Point. It returns an error if c is OneBased and k <= 0.
func FromExternal(c Convention, k int) (Point, error) {
	switch c {
	case ZeroBased:
		if k < 0 {
			return 0, fmt.Errorf("point: negative literal %d under ZeroBased", k)
		}
		return Point(k), nil
	case OneBased:
		if k <= 0 {
			return 0, fmt.Errorf("point: non-positive literal %d under OneBased", k)
		}
		return Point(k - 1), nil
	default:
		return 0, fmt.Errorf("point: unknown convention %d", c)
	}
}

// ToExternal converts an internal Point to the caller's literal under c.
func (p Point) ToExternal(c Convention) int {
	switch c {
	case OneBased:
		return int(p) + 1
	default:
		return int(p)
	}
}

// Int returns the 0-based internal integer.
func (p Point) Int() int { return int(p) }

// Less orders Points by their underlying integer.
func (p Point) Less(other Point) bool { return p < other }

// String renders the 0-based internal value; formatting under a
// caller's convention is the caller's responsibility via ToExternal.
func (p Point) String() string { return fmt.Sprintf("%d", int(p)) }
