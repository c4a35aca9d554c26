package state

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// FusionPair is an ordered pair of anyon indices. It is comparable and
// may be used as a map key.
type FusionPair struct {
	A int
	B int
}

// Compare orders pairs lexicographically by (A, B).
func (p FusionPair) Compare(q FusionPair) int {
	if c := cmp.Compare(p.A, q.A); c != 0 {
		return c
	}

	return cmp.Compare(p.B, q.B)
}

// Less reports p < q under Compare.
func (p FusionPair) Less(q FusionPair) bool { return p.Compare(q) < 0 }

// Contains reports whether i is one of the pair's indices.
func (p FusionPair) Contains(i int) bool { return p.A == i || p.B == i }

// Matches reports whether {a, b} equals {p.A, p.B} regardless of order.
func (p FusionPair) Matches(a, b int) bool {
	return (p.A == a && p.B == b) || (p.A == b && p.B == a)
}

// String renders the pair as "(a b)".
func (p FusionPair) String() string {
	return "(" + strconv.Itoa(p.A) + " " + strconv.Itoa(p.B) + ")"
}

// ParseFusionPair inverts FusionPair.String. Surrounding whitespace is ignored.
func ParseFusionPair(s string) (FusionPair, error) {
	body := strings.TrimSpace(s)
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return FusionPair{}, fmt.Errorf("ParseFusionPair(%q): %w", s, ErrParsePair)
	}
	fields := strings.Fields(body[1 : len(body)-1])
	if len(fields) != 2 {
		return FusionPair{}, fmt.Errorf("ParseFusionPair(%q): %w", s, ErrParsePair)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return FusionPair{}, fmt.Errorf("ParseFusionPair(%q): %w: %w", s, ErrParsePair, err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return FusionPair{}, fmt.Errorf("ParseFusionPair(%q): %w: %w", s, ErrParsePair, err)
	}

	return FusionPair{A: a, B: b}, nil
}

// SortPairs sorts ps in place by Compare.
func SortPairs(ps []FusionPair) {
	slices.SortFunc(ps, FusionPair.Compare)
}

// FusionNode is one scheduled fusion.
type FusionNode struct {
	Time uint32
	Pair FusionPair
}

// FusionEvent is the set of pairs fused at one time step, in recording order.
type FusionEvent []FusionPair
