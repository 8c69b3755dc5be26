package ir

import (
	"math"
	"testing"
)

func TestCompareRank(t *testing.T) {
	// Null < Bool < Number < String < Array < Object
	ordered := []*Node{
		Null(),
		FromBool(false),
		FromInt(0),
		FromString(""),
		FromSlice(nil),
		FromMap(nil),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got != want {
				t.Errorf("compare rank %d vs %d: got %d, want %d", i, j, got, want)
			}
		}
	}
}

func TestCompareScalars(t *testing.T) {
	if Compare(FromBool(false), FromBool(true)) != -1 {
		t.Error("false < true")
	}
	if Compare(FromInt(1), FromInt(2)) != -1 {
		t.Error("1 < 2")
	}
	if Compare(FromString("a"), FromString("b")) != -1 {
		t.Error("a < b")
	}
	if Compare(FromFloat(0), FromFloat(math.Copysign(0, -1))) != 0 {
		t.Error("0 == -0")
	}
}

func TestCompareNaN(t *testing.T) {
	nan := FromFloat(math.NaN())
	if Compare(nan, nan.Clone()) != 0 {
		t.Error("NaN == NaN under total order")
	}
	if Compare(nan, FromFloat(math.Inf(-1))) != -1 {
		t.Error("NaN sorts below -Inf")
	}
}

func TestCompareArrays(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), FromInt(2)})
	b := FromSlice([]*Node{FromInt(1), FromInt(3)})
	if Compare(a, b) != -1 || Compare(b, a) != 1 {
		t.Error("elementwise")
	}
	shorter := FromSlice([]*Node{FromInt(1)})
	if Compare(shorter, a) != -1 {
		t.Error("prefix sorts first")
	}
}

func TestCompareObjects(t *testing.T) {
	a := FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(2)})
	b := FromMap(map[string]*Node{"a": FromInt(1), "b": FromInt(3)})
	if Compare(a, b) != -1 {
		t.Error("valuewise")
	}
	c := FromMap(map[string]*Node{"a": FromInt(1), "c": FromInt(2)})
	if Compare(a, c) != -1 {
		t.Error("keywise")
	}
	sub := FromMap(map[string]*Node{"a": FromInt(1)})
	if Compare(sub, a) != -1 {
		t.Error("fewer fields sorts first")
	}
}

func TestEqual(t *testing.T) {
	a := FromMap(map[string]*Node{
		"xs": FromSlice([]*Node{FromInt(1), Null()}),
	})
	if !Equal(a, a.Clone()) {
		t.Error("clone equality")
	}
	if Equal(a, Null()) {
		t.Error("object vs null")
	}
	if !Equal(nil, nil) {
		t.Error("nil vs nil")
	}
	if Equal(a, nil) {
		t.Error("node vs nil")
	}
}
