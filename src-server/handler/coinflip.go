package handler

import (
	"math/rand/v2"

	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Coinflip(as *utils.AppState) {
	id := "coinflip"
	as.AddAppCmdHandler(id, coinflipHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Flip a coin and get heads or tails!",
	})
}

func coinflipHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "coinflip")
		result := "Heads"
		if rand.IntN(2) == 1 {
			result = "Tails"
		}
		utils.InteractRespReply(s, i, "🪙 The coin landed on **"+result+"**!")
		return nil
	}
}
