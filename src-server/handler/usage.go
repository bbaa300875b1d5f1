package handler

import (
	"context"
	"log/slog"
	"time"

	"saaf/src-server/model"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// trackUsage bumps the persistent per-user usage counter for a command.
// Fire-and-forget: a failed write is logged and never blocks the game.
func trackUsage(as *utils.AppState, i *discordgo.InteractionCreate, command string) {
	userID := utils.InteractionUserID(i)
	if userID == "" {
		return
	}
	go func() {
		startTimer := time.Now()
		usageModel := model.CommandUsage{UserID: userID, Command: command}
		if err := usageModel.Increment(context.Background(), as.BunDB); err != nil {
			slog.Warn("can't track command usage", "command", command, "error", err)
			return
		}
		as.MetricChans.DatabaseWrite <- float64(time.Since(startTimer).Microseconds())
	}()
}
