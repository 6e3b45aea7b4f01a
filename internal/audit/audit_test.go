package audit

import (
	"context"
	"testing"

	"github.com/protonsvc/rasa-nlg/internal/db"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rec, err := store.Record(ctx, Record{BotID: "b1", Source: SourceUpload, ItemCount: 3})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected generated id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	records, err := store.List(ctx, "b1", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].BotID != "b1" || records[0].ItemCount != 3 || records[0].Source != SourceUpload {
		t.Errorf("unexpected record %+v", records[0])
	}
}

func TestListFiltersAndLimits(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	store.Record(ctx, Record{BotID: "b1", Source: SourceCLI, ItemCount: 1})
	store.Record(ctx, Record{BotID: "b2", Source: SourceUpload, ItemCount: 2})
	store.Record(ctx, Record{BotID: "b1", Source: SourceUpload, ItemCount: 3})

	all, err := store.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}

	b1, _ := store.List(ctx, "b1", 0)
	if len(b1) != 2 {
		t.Errorf("expected 2 records for b1, got %d", len(b1))
	}

	limited, _ := store.List(ctx, "", 1)
	if len(limited) != 1 {
		t.Errorf("expected 1 record with limit, got %d", len(limited))
	}
}
