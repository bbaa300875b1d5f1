package model

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// CommandUsage counts how many times a user invoked a slash command.
// Persisted so the counters survive restarts, unlike the game records.
type CommandUsage struct {
	bun.BaseModel `bun:"table:command_usages"`

	UserID  string `bun:"user_id,pk"` // required
	Command string `bun:"command,pk"` // required
	Count   int64  `bun:"count,notnull"`
}

// Increment bumps the counter for one (user, command) pair, creating the
// row on first use.
func (c *CommandUsage) Increment(ctx context.Context, db bun.IDB) error {
	if c.UserID == "" {
		return fmt.Errorf("(*CommandUsage).Increment: user id is blank")
	}
	if c.Command == "" {
		return fmt.Errorf("(*CommandUsage).Increment: command is blank")
	}

	c.Count = 1
	if _, err := db.NewInsert().
		Model(c).
		On("CONFLICT (user_id, command) DO UPDATE").
		Set("count = command_usages.count + 1").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*CommandUsage).Increment: %w", err)
	}
	return nil
}

// UsagesForUser returns every counter for one user, most used first.
func UsagesForUser(ctx context.Context, db bun.IDB, userID string) ([]CommandUsage, error) {
	usages := make([]CommandUsage, 0)
	if err := db.NewSelect().
		Model(&usages).
		Where("user_id = ?", userID).
		Order("count DESC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("UsagesForUser: %w", err)
	}
	return usages, nil
}
