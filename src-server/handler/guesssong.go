package handler

import (
	"fmt"
	"log/slog"
	"time"

	"saaf/src-server/game/songguess"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func GuessSong(as *utils.AppState) {
	id := "guesssong"
	as.AddAppCmdHandler(id, guessSongHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Guess the song from a string of emojis.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "genre",
				Description: "Narrow the riddle to one genre",
				Choices: func() []*discordgo.ApplicationCommandOptionChoice {
					choices := make([]*discordgo.ApplicationCommandOptionChoice, 0)
					for _, genre := range songguess.Genres() {
						choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
							Name:  utils.CleanupString(genre),
							Value: genre,
						})
					}
					return choices
				}(),
			},
		},
	})
}

func guessSongHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "guesssong")
		hostID := utils.InteractionUserID(i)

		genre := ""
		if opts := i.ApplicationCommandData().Options; len(opts) > 0 {
			genre = opts[0].StringValue()
		}
		song, ok := songguess.Pick(genre)
		if !ok {
			utils.InteractRespHiddenReply(s, i, "No songs for that genre.")
			return nil
		}

		gameID := i.ID
		as.Games.SongGuess.Put(gameID, &songguess.Game{HostID: hostID, Song: song})

		selectID := "guesssong-select-" + gameID
		as.AddAppCmdHandler(selectID, guessSongSelectHandler(as, gameID, selectID))

		options := make([]discordgo.SelectMenuOption, 0)
		for _, candidate := range songguess.Options(genre) {
			options = append(options, discordgo.SelectMenuOption{
				Label: candidate.Title,
				Value: candidate.Title,
			})
		}

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("🎵 Guess the song: %s", song.Emojis),
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.SelectMenu{
								CustomID:    selectID,
								Placeholder: "Pick the song",
								Options:     options,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("guessSongHandler: can't respond", "error", err)
			as.Games.SongGuess.Delete(gameID)
			as.RemoveAppCmdHandler(selectID)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func guessSongSelectHandler(as *utils.AppState, gameID, selectID string) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)
		chosen := i.MessageComponentData().Values[0]

		// one answer settles the riddle, right or wrong; read and delete
		// share one critical section so only one answer can claim it
		var game *songguess.Game
		claimed := as.Games.SongGuess.Update(gameID, func(g *songguess.Game) bool {
			game = g
			return false
		})
		if !claimed {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			as.RemoveAppCmdHandler(selectID)
			return nil
		}
		as.RemoveAppCmdHandler(selectID)

		var content string
		if game.Resolve(chosen) {
			content = fmt.Sprintf("🎵 %s\n<@%s> got it — **%s**! 🎉", game.Song.Emojis, actorID, game.Song.Title)
		} else {
			content = fmt.Sprintf("🎵 %s\n<@%s> guessed **%s** — nope, it was **%s**.",
				game.Song.Emojis, actorID, chosen, game.Song.Title)
		}
		utils.InteractRespUpdateMessage(s, i, content, []discordgo.MessageComponent{})
		return nil
	}
}
