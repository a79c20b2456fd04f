package stockfolio

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter_FieldOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 1)
	w.Append("a", "x")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	// Insertion order is preserved, unlike a map.
	if string(got) != `{"b":1,"a":"x"}` {
		t.Errorf("got %s", got)
	}
}

func TestJsonObjectWriter_Optional(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", "USD")

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != `{"a":1,"set":"USD"}` {
		t.Errorf("got %s", got)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJsonObjectWriter_EmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.Append("kind", "wrap")
	w.EmbedFrom(struct {
		A int `json:"a"`
	}{A: 7})

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(got) != `{"kind":"wrap","a":7}` {
		t.Errorf("got %s", got)
	}
	if !json.Valid(got) {
		t.Errorf("invalid JSON: %s", got)
	}
}
