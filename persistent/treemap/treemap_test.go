package treemap_test

import (
	"testing"

	"github.com/yutui1281461/vavr/persistent/treemap"
)

func intCmp(a, b int) int { return a - b }

func TestMapSetGet(t *testing.T) {
	m := treemap.Empty[int, string](intCmp)
	m = m.Set(42, "Galaxy")
	v, found := m.Get(42)
	if !found || v != "Galaxy" {
		t.Errorf("expected to find \"Galaxy\" for 42, got %q (found=%v)", v, found)
	}
	if _, found := m.Get(7); found {
		t.Error("did not expect to find a value for 7")
	}
}

func TestMapSetReplaces(t *testing.T) {
	m := treemap.Empty[int, string](intCmp).Set(1, "a").Set(1, "b")
	if m.Size() != 1 {
		t.Errorf("expected one entry after replacement, have %d", m.Size())
	}
	if v, _ := m.Get(1); v != "b" {
		t.Errorf("expected replaced value \"b\", is %q", v)
	}
}

func TestMapDeleteIsPersistent(t *testing.T) {
	m := treemap.Empty[int, string](intCmp).Set(1, "a").Set(2, "b")
	m2 := m.Delete(1)
	if m2.Has(1) {
		t.Error("expected 1 to be deleted, isn't")
	}
	if !m.Has(1) {
		t.Error("expected original map to keep 1, doesn't")
	}
}

func TestMapKeysAreOrdered(t *testing.T) {
	m := treemap.Empty[int, string](intCmp).Set(3, "c").Set(1, "a").Set(2, "b")
	keys := m.Keys()
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Errorf("expected ordered keys [1 2 3], have %v", keys)
	}
	if m.String() != "{1→a, 2→b, 3→c}" {
		t.Errorf("unexpected rendering %s", m.String())
	}
}
