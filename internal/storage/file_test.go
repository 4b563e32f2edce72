package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "turns.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	t1 := Turn{Timestamp: time.Unix(1, 0).UTC(), Trigger: "selection", Prompt: "Explain Display: 120Hz", Reply: "1. Smooth scrolling."}
	t2 := Turn{Timestamp: time.Unix(2, 0).UTC(), Trigger: "submit", Prompt: "is it waterproof?", Reply: "Error: Unable to get response.", Failed: true}
	if err := rec.AppendTurn(t1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendTurn(t2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	turns, err := rec.LoadTurns()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("want 2, got %d", len(turns))
	}
	if turns[0].Trigger != "selection" || turns[1].Trigger != "submit" {
		t.Fatalf("order mismatch: %+v", turns)
	}
	if !turns[1].Failed {
		t.Fatalf("failed flag lost: %+v", turns[1])
	}

	// ensure file exists and non-empty
	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}
