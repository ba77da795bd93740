package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/termllo/internal/database"
	"github.com/thenoetrevino/termllo/internal/models"
	"github.com/thenoetrevino/termllo/internal/snapshot"
)

// SetupSnapshotCache creates a snapshot cache over an in-memory database
func SetupSnapshotCache(t *testing.T, opts ...snapshot.Option) *snapshot.Cache {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return snapshot.New(db, opts...)
}

// SampleBoard seeds remote with a starred board "b1" holding lists A and B.
// A has cards x(pos 1) and y(pos 3); B is empty.
func SampleBoard(remote *FakeRemote) {
	remote.AddBoard(models.Board{
		ID:           "b1",
		Name:         "Work",
		Starred:      true,
		LastViewed:   time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		LastModified: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	remote.AddList("b1", "A", "Todo")
	remote.AddList("b1", "B", "Done")
	remote.AddCard("b1", models.Card{ID: "x", Name: "x", ListID: "A", Pos: 1})
	remote.AddCard("b1", models.Card{ID: "y", Name: "y", ListID: "A", Pos: 3})
}
