package wordlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetOperations(t *testing.T) {
	s := NewSet("its", "dont")
	if !s.Add("stopnow") {
		t.Fatal("expected new word to be added")
	}
	if s.Add("its") {
		t.Fatal("expected duplicate to be rejected")
	}
	if !s.Has("dont") || s.Has("missing") {
		t.Fatal("Has returned wrong membership")
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	added := s.Union(NewSet("its", "alice", ""))
	if added != 2 {
		t.Fatalf("Union added %d, want 2", added)
	}

	want := []string{"", "alice", "dont", "its", "stopnow"}
	if diff := cmp.Diff(want, s.Words(true)); diff != "" {
		t.Fatalf("sorted words mismatch (-want +got):\n%s", diff)
	}
	if got := len(s.Words(false)); got != len(want) {
		t.Fatalf("unsorted Words returned %d items, want %d", got, len(want))
	}
}
