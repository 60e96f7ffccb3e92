package main

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
)

type recordingCreator struct {
	existing map[string]bool
	failOn   string
	created  []string
}

func (c *recordingCreator) Create(_ context.Context, item *catalog.Item) error {
	if item.ID == c.failOn {
		return errors.New("write refused")
	}
	if c.existing[item.ID] {
		return catalog.ErrDuplicate
	}
	c.created = append(c.created, item.ID)
	return nil
}

func TestInsertItemsSkipsDuplicates(t *testing.T) {
	target := &recordingCreator{existing: map[string]bool{"b": true}}
	items := []catalog.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	inserted, skipped, err := insertItems(context.Background(), target, items)
	if err != nil {
		t.Fatalf("insertItems: %v", err)
	}
	if inserted != 2 || skipped != 1 {
		t.Fatalf("expected 2 inserted 1 skipped, got %d and %d", inserted, skipped)
	}
}

func TestInsertItemsReturnsFailureInsteadOfExiting(t *testing.T) {
	target := &recordingCreator{failOn: "b"}
	items := []catalog.Item{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	inserted, _, err := insertItems(context.Background(), target, items)
	if err == nil {
		t.Fatal("expected insert error")
	}
	if inserted != 1 || len(target.created) != 1 {
		t.Fatalf("expected to stop after the first product, created %v", target.created)
	}
}

func TestRunReportsBadFlags(t *testing.T) {
	if code := run([]string{"-no-such-flag"}); code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
}
