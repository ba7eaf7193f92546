package history

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
)

func TestStoreRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, err := Open(fs, "/data/history.json")
	if err != nil {
		t.Fatal(err)
	}
	s.Add(Entry{Expr: "12+3*4", Result: 24, Time: time.Unix(100, 0).UTC()})
	s.Add(Entry{Expr: "10-4", Result: 6, Time: time.Unix(200, 0).UTC()})
	if err := s.Persist(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(fs, "/data/history.json")
	if err != nil {
		t.Fatal(err)
	}
	got := r.Entries()
	if len(got) != 2 || got[0].Expr != "12+3*4" || got[0].Result != 24 || got[1].Result != 6 {
		t.Fatalf("wrong entries after reload:\n%s", spew.Sdump(got))
	}
}

func TestStoreMissingFile(t *testing.T) {
	s, err := Open(afero.NewMemMapFs(), "/nope/history.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Fatalf("expected empty store, got:\n%s", spew.Sdump(s.Entries()))
	}
}

func TestStoreCorruptFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/h.json", []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(fs, "/h.json"); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestStoreBound(t *testing.T) {
	s, _ := Open(afero.NewMemMapFs(), "/h.json")
	for i := 0; i < maxEntries+10; i++ {
		s.Add(Entry{Expr: "1+1", Result: 2})
	}
	if len(s.Entries()) != maxEntries {
		t.Fatalf("len = %d, want %d", len(s.Entries()), maxEntries)
	}
}

func TestStoreClear(t *testing.T) {
	fs := afero.NewMemMapFs()
	s, _ := Open(fs, "/h.json")
	s.Add(Entry{Expr: "7", Result: 7})
	if err := s.Persist(); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if len(s.Entries()) != 0 {
		t.Fatal("entries not cleared")
	}
	if exists, _ := afero.Exists(fs, "/h.json"); exists {
		t.Fatal("history file not removed")
	}
	// clearing an empty store is fine
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
}
