package handler

import (
	"fmt"
	"time"

	"saaf/src-server/game/zodiac"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Zodiac(as *utils.AppState) {
	id := "zodiac"
	as.AddAppCmdHandler(id, zodiacHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Enter your birth month and day to get a horoscope fact.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "month",
				Description: "Birth Month (1-12)",
				Required:    false,
				MinValue:    func() *float64 { v := 1.0; return &v }(),
				MaxValue:    12,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "day",
				Description: "Birth Day (1-31)",
				Required:    false,
				MinValue:    func() *float64 { v := 1.0; return &v }(),
				MaxValue:    31,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Your birthday in plain words, e.g. \"july 23\".",
				Required:    false,
			},
		},
	})
}

func zodiacHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "zodiac")

		var month, day int
		for _, opt := range i.ApplicationCommandData().Options {
			switch opt.Name {
			case "month":
				month = int(opt.IntValue())
			case "day":
				day = int(opt.IntValue())
			case "date":
				result, err := as.When.Parse(opt.StringValue(), time.Now().In(as.Config.GetLocation()))
				if err != nil || result == nil {
					utils.InteractRespHiddenReply(s, i, "Couldn't understand that date. Try \"july 23\" or the month/day options.")
					return nil
				}
				month = int(result.Time.Month())
				day = result.Time.Day()
			}
		}

		sign, ok := zodiac.Lookup(month, day)
		if !ok {
			utils.InteractRespHiddenReply(s, i, fmt.Sprintf("Invalid date provided (%d/%d). Please try again.", month, day))
			return nil
		}

		utils.InteractRespReply(s, i, fmt.Sprintf(
			"🌌 **Astrology Fact** 🌌\n\n**Sign:** %s\n**Date:** %d/%d\n\n✨ *%s*",
			sign.Name, month, day, sign.Fact,
		))
		return nil
	}
}
