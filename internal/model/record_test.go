package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRecordGet(t *testing.T) {
	h := NewHeader([]string{"Exch", "Name", "Series"})
	r := NewRecord(h, []string{"N", "RELI", "EQ"})

	t.Run("existing column", func(t *testing.T) {
		v, err := r.Get("Name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "RELI" {
			t.Errorf("Get(Name) = %q, want %q", v, "RELI")
		}
	})

	t.Run("missing column is a SchemaError", func(t *testing.T) {
		_, err := r.Get("Scripcode")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("expected *SchemaError, got %T", err)
		}
		if schemaErr.Column != "Scripcode" {
			t.Errorf("Column = %q, want %q", schemaErr.Column, "Scripcode")
		}
	})

	t.Run("lookup", func(t *testing.T) {
		if v, ok := r.Lookup("Exch"); !ok || v != "N" {
			t.Errorf("Lookup(Exch) = %q, %v, want %q, true", v, ok, "N")
		}
		if _, ok := r.Lookup("Missing"); ok {
			t.Error("Lookup(Missing) should report absence")
		}
	})
}

func TestRecordMarshalJSON(t *testing.T) {
	// Keys must come out in parsed column order, not sorted.
	h := NewHeader([]string{"Zeta", "Alpha", "Mid"})
	r := NewRecord(h, []string{"1", "2", "3"})

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"Zeta":"1","Alpha":"2","Mid":"3"}`
	if string(out) != want {
		t.Errorf("MarshalJSON = %s, want %s", out, want)
	}
}

func TestHeaderDuplicateColumn(t *testing.T) {
	h := NewHeader([]string{"Name", "Name"})
	r := NewRecord(h, []string{"first", "second"})

	v, err := r.Get("Name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "first" {
		t.Errorf("Get(Name) = %q, want first occurrence %q", v, "first")
	}
}
