package repos_test

import (
	"testing"

	"ubermelon/internal/repos"
)

func TestFlashQueue_DrainOnce(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	sr := repos.NewSessionRepo(db)
	sid := "sess-flash"

	if err := sr.PushFlash(sid, "first"); err != nil {
		t.Fatal(err)
	}
	if err := sr.PushFlash(sid, "second"); err != nil {
		t.Fatal(err)
	}

	msgs, err := sr.DrainFlashes(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(msgs) != 2 || msgs[0] != "first" || msgs[1] != "second" {
		t.Fatalf("want [first second], got %v", msgs)
	}

	again, err := sr.DrainFlashes(sid)
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Fatalf("queue should be empty after drain, got %v", again)
	}
}

func TestCartEntries_AppendOrder(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	sr := repos.NewSessionRepo(db)
	sid := "sess-order"

	for _, id := range []int{3, 1, 3, 2} {
		if err := sr.AppendCartEntry(sid, id); err != nil {
			t.Fatal(err)
		}
	}
	ids, err := sr.CartMelonIDs(sid)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 1, 3, 2}
	if len(ids) != len(want) {
		t.Fatalf("want %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("want %v, got %v", want, ids)
		}
	}
}
