package cmd

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{"s": "value", "n": 42}
	if got := stringParam(params, "s", "d"); got != "value" {
		t.Errorf("got %q", got)
	}
	if got := stringParam(params, "missing", "d"); got != "d" {
		t.Errorf("got %q", got)
	}
	if got := stringParam(params, "n", "d"); got != "42" {
		t.Errorf("numeric coercion got %q", got)
	}
}

func TestIntParam(t *testing.T) {
	params := map[string]interface{}{
		"i": 7,
		"f": float64(8), // JSON numbers decode as float64
		"l": int64(9),
		"s": "nope",
	}
	if got := intParam(params, "i", 0); got != 7 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "f", 0); got != 8 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "l", 0); got != 9 {
		t.Errorf("got %d", got)
	}
	if got := intParam(params, "s", 3); got != 3 {
		t.Errorf("non-numeric should fall back, got %d", got)
	}
	if got := intParam(params, "missing", 5); got != 5 {
		t.Errorf("got %d", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{"b": true, "s": "true"}
	if !boolParam(params, "b", false) {
		t.Error("expected true")
	}
	if boolParam(params, "s", false) {
		t.Error("string is not a bool")
	}
	if !boolParam(params, "missing", true) {
		t.Error("expected the default")
	}
}
