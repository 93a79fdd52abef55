package kit

import "testing"

func TestParseSort(t *testing.T) {
	s, err := ParseSort("entry_date:desc", "entry_date", "created_at")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Field != "entry_date" || s.Asc {
		t.Fatalf("unexpected spec: %+v", s)
	}
	if _, err := ParseSort("entry_date", "entry_date"); err != nil {
		t.Fatalf("bare field should default to asc: %v", err)
	}
	if _, err := ParseSort("unknown:asc", "entry_date"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if _, err := ParseSort("entry_date:sideways", "entry_date"); err == nil {
		t.Fatalf("expected error for bad direction")
	}
}
