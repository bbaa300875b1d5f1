package handler

import (
	"fmt"
	"log/slog"
	"time"

	"saaf/src-server/game/hilo"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func HigherLower(as *utils.AppState) {
	id := "higherlower"
	as.AddAppCmdHandler(id, higherLowerHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Play a game of Higher or Lower!",
	})

	// single-player, keyed by actor id, so the component ids can be
	// static and registered once
	for customID, guess := range map[string]hilo.Guess{
		"hilo-higher": hilo.Higher,
		"hilo-lower":  hilo.Lower,
		"hilo-red":    hilo.Red,
		"hilo-black":  hilo.Black,
		"hilo-end":    hilo.End,
	} {
		as.AddAppCmdHandler(customID, hiloGuessHandler(as, guess))
	}
}

func hiloComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Higher", Style: discordgo.PrimaryButton, CustomID: "hilo-higher"},
				discordgo.Button{Label: "Lower", Style: discordgo.PrimaryButton, CustomID: "hilo-lower"},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Red", Style: discordgo.DangerButton, CustomID: "hilo-red"},
				discordgo.Button{Label: "Black", Style: discordgo.SecondaryButton, CustomID: "hilo-black"},
				discordgo.Button{Label: "End Game", Style: discordgo.SecondaryButton, CustomID: "hilo-end"},
			},
		},
	}
}

func higherLowerHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "higherlower")
		actorID := utils.InteractionUserID(i)

		// starting a new game silently discards any running one
		game := hilo.New()
		as.Games.HiLo.Put(actorID, game)

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf(
					"**Higher or Lower Game Started!**\n\nYour card is: **%s**\nStreak: 0\nCards left in deck: %d\n\nGuess if the next card will be...",
					game.Current, game.Deck.Remaining(),
				),
				Components: hiloComponents(),
			},
		}); err != nil {
			slog.Warn("higherLowerHandler: can't respond", "error", err)
			as.Games.HiLo.Delete(actorID)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func hiloGuessHandler(as *utils.AppState, guess hilo.Guess) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		var components []discordgo.MessageComponent
		found := as.Games.HiLo.Update(actorID, func(game *hilo.Game) bool {
			res := game.Call(guess)
			switch res.Status {
			case hilo.Ended:
				content = fmt.Sprintf("Game ended. Final streak: **%d**!", res.Streak)
				return false
			case hilo.Won:
				content = fmt.Sprintf("Correct! The card was **%s**. Deck finished! 🏆 Final Streak: %d",
					res.Revealed, res.Streak)
				return false
			case hilo.Lost:
				content = fmt.Sprintf("Wrong! The card was **%s**. 😥\nGame over. Final streak: **%d**.",
					res.Revealed, res.Streak)
				return false
			default:
				content = fmt.Sprintf("Correct! The card was **%s**.\nNew card: **%s**\nStreak: %d\nCards left in deck: %d\nGuess next...",
					res.Revealed, game.Current, res.Streak, game.Deck.Remaining())
				components = hiloComponents()
				return true
			}
		})
		if !found {
			utils.InteractRespUpdateMessage(s, i, "Game expired/not found.", []discordgo.MessageComponent{})
			return nil
		}
		utils.InteractRespUpdateMessage(s, i, content, components)
		return nil
	}
}
