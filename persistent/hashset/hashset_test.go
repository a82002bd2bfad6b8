package hashset_test

import (
	"sort"
	"testing"

	"github.com/yutui1281461/vavr/persistent/hamt"
	"github.com/yutui1281461/vavr/persistent/hashset"
)

func eqInt(a, b int) bool { return a == b }

func of(values ...int) hashset.Set[int] {
	return hashset.Of(hamt.HashInt, eqInt, values...)
}

func sorted(s hashset.Set[int]) []int {
	values := s.Values()
	sort.Ints(values)
	return values
}

func TestSetAddContains(t *testing.T) {
	s := of(1, 2, 3)
	if !s.Contains(2) {
		t.Error("expected set to contain 2, doesn't")
	}
	if s.Contains(7) {
		t.Error("did not expect set to contain 7")
	}
	if s.Len() != 3 {
		t.Errorf("expected 3 elements, have %d", s.Len())
	}
}

func TestSetAddIsIdempotent(t *testing.T) {
	s := of(1, 2).Add(2)
	if s.Len() != 2 {
		t.Errorf("expected adding a contained element to be a no-op, have %d elements", s.Len())
	}
}

func TestSetRemoveIsPersistent(t *testing.T) {
	s := of(1, 2, 3)
	s2 := s.Remove(2)
	if s2.Contains(2) {
		t.Error("expected 2 to be removed, isn't")
	}
	if !s.Contains(2) {
		t.Error("expected original set to keep 2, doesn't")
	}
}

func TestSetAlgebra(t *testing.T) {
	a := of(1, 2, 3, 4)
	b := of(3, 4, 5, 6)
	tests := []struct {
		name string
		s    hashset.Set[int]
		want []int
	}{
		{"union", a.Union(b), []int{1, 2, 3, 4, 5, 6}},
		{"intersection", a.Intersection(b), []int{3, 4}},
		{"difference", a.Difference(b), []int{1, 2}},
	}
	for _, tc := range tests {
		have := sorted(tc.s)
		if len(have) != len(tc.want) {
			t.Errorf("%s: expected %v, have %v", tc.name, tc.want, have)
			continue
		}
		for i, v := range tc.want {
			if have[i] != v {
				t.Errorf("%s: expected %v, have %v", tc.name, tc.want, have)
				break
			}
		}
	}
}
