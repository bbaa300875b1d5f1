package handler

import (
	"fmt"
	"math/rand/v2"

	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

var jokes = []string{
	"Why do JavaScript developers wear glasses? Because they don't C#!",
	"What's the object-oriented way to become wealthy? Inheritance.",
	"Why did the programmer quit his job? Because he didn't get arrays.",
}

func Joke(as *utils.AppState) {
	id := "joke"
	as.AddAppCmdHandler(id, jokeHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Sends a random joke or a specific one.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "number",
				Description: fmt.Sprintf("The number of the joke you want (1-%d)", len(jokes)),
				Required:    false,
				MinValue:    func() *float64 { v := 1.0; return &v }(),
				MaxValue:    float64(len(jokes)),
			},
		},
	})
}

func jokeHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "joke")

		content := jokes[rand.IntN(len(jokes))]
		for _, opt := range i.ApplicationCommandData().Options {
			if opt.Name != "number" {
				continue
			}
			num := int(opt.IntValue())
			if num >= 1 && num <= len(jokes) {
				content = fmt.Sprintf("Joke #%d: %s", num, jokes[num-1])
			} else {
				content = fmt.Sprintf("Please pick a number between 1 and %d.", len(jokes))
			}
		}

		utils.InteractRespReply(s, i, content)
		return nil
	}
}
