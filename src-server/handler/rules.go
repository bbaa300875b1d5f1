package handler

import (
	"log/slog"
	"time"

	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Rules(as *utils.AppState) {
	id := "rules"
	as.AddAppCmdHandler(id, rulesHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show the bot theme, rules, and example commands.",
	})
}

func rulesHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "rules")
		embeds := []*discordgo.MessageEmbed{
			{
				Title:       "Bot Theme & Rules",
				Description: "A fun Discord bot to play quick games like Rock Paper Scissors with friends!",
				Color:       0x00ff00,
				Fields: []*discordgo.MessageEmbedField{
					{
						Name: "Rules",
						Value: "1. Be respectful to other players.\n" +
							"2. No spamming buttons or options.\n" +
							"3. Only use commands in the proper channels.\n" +
							"4. Have fun and enjoy random surprises 😄\n" +
							"5. The bot is meant for casual gaming; results are just for fun!",
					},
					{
						Name: "Example Commands",
						Value: "/ping - Test the bot's response\n" +
							"/challenge <choice> - Start a Rock Paper Scissors game with a friend",
					},
				},
			},
		}

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: embeds,
			},
		}); err != nil {
			slog.Warn("rulesHandler: can't respond", "error", err)
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}
