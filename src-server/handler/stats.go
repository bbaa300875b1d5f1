package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/model"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Stats(as *utils.AppState) {
	id := "stats"
	as.AddAppCmdHandler(id, statsHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show how often you've used each command.",
	})
}

func statsHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		userID := utils.InteractionUserID(i)

		startTimer := time.Now()
		usages, err := model.UsagesForUser(context.Background(), as.BunDB, userID)
		if err != nil {
			utils.InteractRespHiddenReply(s, i, "Can't load your usage stats right now.")
			return fmt.Errorf("statsHandler: %w", err)
		}
		as.MetricChans.DatabaseRead <- float64(time.Since(startTimer).Microseconds())

		if len(usages) == 0 {
			utils.InteractRespHiddenReply(s, i, "No usage recorded yet. Go play something!")
			return nil
		}

		// text bar chart, widest bar pinned to 20 cells
		maxCount := usages[0].Count
		var sb strings.Builder
		for _, u := range usages {
			width := int(u.Count * 20 / maxCount)
			if width < 1 {
				width = 1
			}
			fmt.Fprintf(&sb, "`%-12s` %s %d\n", u.Command, strings.Repeat("█", width), u.Count)
		}

		startTimer = time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags: discordgo.MessageFlagsEphemeral,
				Embeds: []*discordgo.MessageEmbed{
					{
						Title:       "Command usage",
						Description: sb.String(),
					},
				},
			},
		}); err != nil {
			slog.Warn("statsHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}
