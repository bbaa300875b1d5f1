package metric

import (
	"context"
	"time"

	"saaf/src-server/model"
	"saaf/src-server/utils"
)

func database(as *utils.AppState) (time.Duration, error) {
	start := time.Now()
	if _, err := as.BunDB.NewSelect().
		Model((*model.CommandUsage)(nil)).
		Where("user_id = ?", "").
		Exists(context.Background()); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}
