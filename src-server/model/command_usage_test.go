package model_test

import (
	"context"
	"database/sql"
	"testing"

	"saaf/src-server/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func TestCommandUsage(t *testing.T) {
	// init db
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Error(err)
	}
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Error(err)
	}

	// case: first increment creates the row
	usage := model.CommandUsage{UserID: "user-1", Command: "hangman"}
	if err := usage.Increment(context.Background(), bundb); err != nil {
		t.Error(err)
	}
	usages, err := model.UsagesForUser(context.Background(), bundb, "user-1")
	if err != nil {
		t.Error(err)
	}
	if len(usages) != 1 || usages[0].Count != 1 {
		t.Errorf("after first increment: %+v", usages)
	}

	// case: repeat increments bump the same row
	for i := 0; i < 4; i++ {
		u := model.CommandUsage{UserID: "user-1", Command: "hangman"}
		if err := u.Increment(context.Background(), bundb); err != nil {
			t.Error(err)
		}
	}
	usages, err = model.UsagesForUser(context.Background(), bundb, "user-1")
	if err != nil {
		t.Error(err)
	}
	if len(usages) != 1 || usages[0].Count != 5 {
		t.Errorf("after five increments: %+v", usages)
	}

	// case: commands sorted by count, scoped to the user
	other := model.CommandUsage{UserID: "user-1", Command: "blackjack"}
	if err := other.Increment(context.Background(), bundb); err != nil {
		t.Error(err)
	}
	stranger := model.CommandUsage{UserID: "user-2", Command: "hangman"}
	if err := stranger.Increment(context.Background(), bundb); err != nil {
		t.Error(err)
	}
	usages, err = model.UsagesForUser(context.Background(), bundb, "user-1")
	if err != nil {
		t.Error(err)
	}
	if len(usages) != 2 {
		t.Errorf("user-1 has %d rows, want 2", len(usages))
	}
	if usages[0].Command != "hangman" || usages[1].Command != "blackjack" {
		t.Errorf("order: %+v", usages)
	}

	// case: blank ids rejected
	bad := model.CommandUsage{UserID: "", Command: "hangman"}
	if err := bad.Increment(context.Background(), bundb); err == nil {
		t.Error("blank user id should be rejected")
	}
}
