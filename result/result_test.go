package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/yutui1281461/vavr/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultWithDefault(t *testing.T) {
	if Ok(7).WithDefault(100) != 7 {
		t.Error("expected Ok(7) to have value 7, isn't")
	}
	if Err[int](errors.New("not ok")).WithDefault(100) != 100 {
		t.Error("expected Err to default to 100, isn't")
	}
}

func TestResultMap(t *testing.T) {
	x := Ok(7).Map(func(n int) int { return n * 2 })
	if x.WithDefault(0) != 14 {
		t.Error("expected Ok(7).Map(…) to return 14, didn't")
	}
	y := Err[int](errors.New("not ok")).Map(func(n int) int { return n * 2 })
	var e error
	switch m := y.Match(); m {
	case m.Err(&e):
	default:
		t.Error("expected mapped Err to stay an Err, didn't")
	}
}

func TestResultAndThen(t *testing.T) {
	atoi := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[int](err)
		}
		return Ok(n)
	}
	if AndThen(atoi, Ok("42")).WithDefault(0) != 42 {
		t.Error("expected Ok(\"42\") |> andThen(atoi) to be 42, isn't")
	}
	bad := AndThen(atoi, Ok("x"))
	var e error
	switch m := bad.Match(); m {
	case m.Err(&e):
	default:
		t.Error("expected Ok(\"x\") |> andThen(atoi) to fail, didn't")
	}
}

func TestResultMaybeBridge(t *testing.T) {
	if v, ok := ToMaybe(Ok(7)).Unwrap(); !ok || v != 7 {
		t.Errorf("expected Just(7), have (%d, %v)", v, ok)
	}
	if _, ok := ToMaybe(Err[int](errors.New("not ok"))).Unwrap(); ok {
		t.Error("expected Err to map to Nothing, didn't")
	}
	sentinel := errors.New("missing")
	bad := FromMaybe(ToMaybe(Err[int](errors.New("not ok"))), sentinel)
	var e error
	switch m := bad.Match(); m {
	case m.Err(&e):
	default:
		t.Error("expected FromMaybe(Nothing, err) to be Err, isn't")
	}
	if !errors.Is(e, sentinel) {
		t.Errorf("expected sentinel error, have %v", e)
	}
}
