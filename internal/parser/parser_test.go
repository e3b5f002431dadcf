package parser

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Run("basic document", func(t *testing.T) {
		text := "Exch,Name,Series\nN,RELI,EQ\nB,500325,EQ\n"
		records, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("len(records) = %d, want 2", len(records))
		}

		// Row order is preserved.
		name, err := records[0].Get("Name")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "RELI" {
			t.Errorf("records[0][Name] = %q, want %q", name, "RELI")
		}
		name, _ = records[1].Get("Name")
		if name != "500325" {
			t.Errorf("records[1][Name] = %q, want %q", name, "500325")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := Parse("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %T", err)
		}
	})

	t.Run("whitespace only input", func(t *testing.T) {
		_, err := Parse("\n\n\n")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("header only", func(t *testing.T) {
		records, err := Parse("Exch,Name\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("len(records) = %d, want 0", len(records))
		}
	})

	t.Run("short row padded", func(t *testing.T) {
		records, err := Parse("Exch,Name,Series\nN,RELI\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		series, err := records[0].Get("Series")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if series != "" {
			t.Errorf("Series = %q, want empty", series)
		}
	})

	t.Run("long row truncated", func(t *testing.T) {
		records, err := Parse("Exch,Name\nN,RELI,extra,fields\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		name, _ := records[0].Get("Name")
		if name != "RELI" {
			t.Errorf("Name = %q, want %q", name, "RELI")
		}
	})

	t.Run("quoted fields", func(t *testing.T) {
		records, err := Parse("Exch,Name\nN,\"RELI, LTD\"\n")
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		name, _ := records[0].Get("Name")
		if name != "RELI, LTD" {
			t.Errorf("Name = %q, want %q", name, "RELI, LTD")
		}
	})
}
