// ABOUTME: Tests for the Badger-backed string-set store.
// ABOUTME: Covers round trips, missing keys, replacement, and deletion.
package kv

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "progress"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestGetMissingKeyIsEmpty(t *testing.T) {
	store := setupTestStore(t)

	set, err := store.GetStringSet("goal_progress_missing")
	if err != nil {
		t.Fatalf("GetStringSet failed: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("missing key read %d members, want 0", len(set))
	}
}

func TestSetAndGetRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	want := map[string]struct{}{
		"2025-07-28": {},
		"2025-07-29": {},
		"2025-07-30": {},
	}
	if err := store.SetStringSet("goal_progress_abc", want); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}

	got, err := store.GetStringSet("goal_progress_abc")
	if err != nil {
		t.Fatalf("GetStringSet failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d members, want %d", len(got), len(want))
	}
	for day := range want {
		if _, ok := got[day]; !ok {
			t.Errorf("missing member %q", day)
		}
	}
}

func TestSetReplacesPrevious(t *testing.T) {
	store := setupTestStore(t)

	first := map[string]struct{}{"2025-07-28": {}, "2025-07-29": {}}
	if err := store.SetStringSet("k", first); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}

	second := map[string]struct{}{"2025-07-30": {}}
	if err := store.SetStringSet("k", second); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}

	got, err := store.GetStringSet("k")
	if err != nil {
		t.Fatalf("GetStringSet failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d members, want 1", len(got))
	}
	if _, ok := got["2025-07-30"]; !ok {
		t.Error("expected replacement value to be present")
	}
}

func TestDeleteKey(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetStringSet("k", map[string]struct{}{"2025-07-30": {}}); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}
	if err := store.DeleteKey("k"); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}

	got, err := store.GetStringSet("k")
	if err != nil {
		t.Fatalf("GetStringSet failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("deleted key read %d members, want 0", len(got))
	}

	// Deleting again is fine.
	if err := store.DeleteKey("k"); err != nil {
		t.Errorf("DeleteKey on missing key failed: %v", err)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.SetStringSet("goal_progress_a", map[string]struct{}{"2025-07-30": {}}); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}
	if err := store.SetStringSet("goal_progress_b", map[string]struct{}{"2025-07-29": {}, "2025-07-30": {}}); err != nil {
		t.Fatalf("SetStringSet failed: %v", err)
	}
	if err := store.DeleteKey("goal_progress_a"); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}

	got, err := store.GetStringSet("goal_progress_b")
	if err != nil {
		t.Fatalf("GetStringSet failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("unrelated key disturbed: got %d members, want 2", len(got))
	}
}
