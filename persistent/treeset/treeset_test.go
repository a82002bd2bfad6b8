package treeset_test

import (
	"testing"

	"github.com/yutui1281461/vavr/persistent/treeset"
)

func intCmp(a, b int) int { return a - b }

func TestSetAddContains(t *testing.T) {
	s := treeset.Empty[int](intCmp)
	if !s.IsEmpty() {
		t.Error("expected fresh set to be empty, isn't")
	}
	s = s.Add(2).Add(1).Add(3).Add(2)
	if s.Size() != 3 {
		t.Errorf("expected set of size 3, has %d", s.Size())
	}
	if !s.Contains(2) || s.Contains(4) {
		t.Errorf("unexpected membership in %s", s)
	}
}

func TestSetRemove(t *testing.T) {
	s := treeset.Of(intCmp, 1, 2, 3)
	s2 := s.Remove(2)
	if s2.Contains(2) {
		t.Error("expected 2 to be removed, isn't")
	}
	if !s.Contains(2) {
		t.Error("expected original set to keep 2, doesn't")
	}
}

func TestSetValuesAreOrdered(t *testing.T) {
	s := treeset.Of(intCmp, 5, 1, 4, 2, 3)
	values := s.Values()
	for i, v := range values {
		if v != i+1 {
			t.Errorf("expected value #%d to be %d, is %d", i, i+1, v)
		}
	}
}

func TestSetAlgebra(t *testing.T) {
	a := treeset.Of(intCmp, 1, 2, 3, 4)
	b := treeset.Of(intCmp, 3, 4, 5, 6)
	if u := a.Union(b); !u.Equals(treeset.Of(intCmp, 1, 2, 3, 4, 5, 6)) {
		t.Errorf("unexpected union %s", u)
	}
	if i := a.Intersection(b); !i.Equals(treeset.Of(intCmp, 3, 4)) {
		t.Errorf("unexpected intersection %s", i)
	}
	if d := a.Difference(b); !d.Equals(treeset.Of(intCmp, 1, 2)) {
		t.Errorf("unexpected difference %s", d)
	}
}

func TestSetMinMaxString(t *testing.T) {
	s := treeset.Of(intCmp, 2, 3, 1)
	if min, ok := s.Min(); !ok || min != 1 {
		t.Errorf("expected min 1, is %d", min)
	}
	if max, ok := s.Max(); !ok || max != 3 {
		t.Errorf("expected max 3, is %d", max)
	}
	if s.String() != "{1, 2, 3}" {
		t.Errorf("expected {1, 2, 3}, is %s", s.String())
	}
}
