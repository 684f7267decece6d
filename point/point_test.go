// SPDX-License-Identifier: MIT
//
package point

import "testing"

func TestFromExternalZeroBased(t *testing.T) {
	p, err := FromExternal(ZeroBased, 0)
	if err != nil || p != 0 {
		t.Fatalf("got (%v, %v), want (0, nil)", p, err)
	}
	if _, err := FromExternal(ZeroBased, -1); err == nil {
		t.Fatal("expected error for negative literal under ZeroBased")
	}
}

func TestFromExternalOneBased(t *testing.T) {
	p, err := FromExternal(OneBased, 1)
	if err != nil || p != 0 {
		t.Fatalf("got (%v, %v), want (0, nil)", p, err)
	}
	if _, err := FromExternal(OneBased, 0); err == nil {
		t.Fatal("expected error for non-positive literal under OneBased")
	}
}

func TestToExternalRoundTrip(t *testing.T) {
	for _, k := range []int{1, 2, 3, 10} {
		p, err := FromExternal(OneBased, k)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.ToExternal(OneBased); got != k {
			t.Fatalf("round trip OneBased(%d) = %d", k, got)
		}
	}
	for _, k := range []int{0, 1, 2, 10} {
		p, err := FromExternal(ZeroBased, k)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.ToExternal(ZeroBased); got != k {
			t.Fatalf("round trip ZeroBased(%d) = %d", k, got)
		}
	}
}

func TestLess(t *testing.T) {
	if !Point(1).Less(Point(2)) {
		t.Fatal("expected 1 < 2")
	}
	if Point(2).Less(Point(1)) {
		t.Fatal("expected 2 !< 1")
	}
}
