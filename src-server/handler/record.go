package handler

import (
	"fmt"

	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Record(as *utils.AppState) {
	id := "record"
	as.AddAppCmdHandler(id, recordHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Show a player's win/loss record across challenge games.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Whose record to look up, defaults to you.",
				Required:    false,
			},
		},
	})
}

func recordHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		targetID := utils.InteractionUserID(i)
		for _, opt := range i.ApplicationCommandData().Options {
			if opt.Name == "user" {
				targetID = opt.UserValue(nil).ID
			}
		}

		rec := as.Ledger.Get(targetID)
		utils.InteractRespHiddenReply(s, i, fmt.Sprintf(
			"<@%s> — **%d**-**%d**-**%d** (wins-losses-ties)",
			targetID, rec.Wins, rec.Losses, rec.Ties,
		))
		return nil
	}
}
