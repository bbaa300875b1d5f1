package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/game/blackjack"
	"saaf/src-server/game/card"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Blackjack(as *utils.AppState) {
	id := "blackjack"
	as.AddAppCmdHandler(id, blackjackHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Play a hand of blackjack against the dealer.",
	})

	as.AddAppCmdHandler("blackjack-hit", blackjackHitHandler(as))
	as.AddAppCmdHandler("blackjack-stand", blackjackStandHandler(as))
}

func blackjackComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Hit", Style: discordgo.PrimaryButton, CustomID: "blackjack-hit"},
				discordgo.Button{Label: "Stand", Style: discordgo.SecondaryButton, CustomID: "blackjack-stand"},
			},
		},
	}
}

func handLine(cards []card.Card) string {
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func blackjackHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "blackjack")
		actorID := utils.InteractionUserID(i)

		// one concurrent game per actor; a fresh start discards the
		// previous hand silently
		game := blackjack.New()
		as.Games.Blackjack.Put(actorID, game)

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf(
					"**Blackjack**\nYour hand: %s (total %d)\nDealer shows: %s\n\nHit or stand?",
					handLine(game.Player), game.PlayerValue(), game.Dealer[0],
				),
				Components: blackjackComponents(),
			},
		}); err != nil {
			slog.Warn("blackjackHandler: can't respond", "error", err)
			as.Games.Blackjack.Delete(actorID)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func blackjackHitHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		var components []discordgo.MessageComponent
		found := as.Games.Blackjack.Update(actorID, func(game *blackjack.Game) bool {
			res := game.Hit()
			if res.Outcome == blackjack.PlayerBust {
				content = fmt.Sprintf(
					"You drew **%s**.\nYour hand: %s (total %d)\n\n💥 Bust! Dealer wins.",
					res.Drawn, handLine(game.Player), res.Total,
				)
				return false
			}
			content = fmt.Sprintf(
				"You drew **%s**.\nYour hand: %s (total %d)\nDealer shows: %s\n\nHit or stand?",
				res.Drawn, handLine(game.Player), res.Total, game.Dealer[0],
			)
			components = blackjackComponents()
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found. Start one with /blackjack.")
			return nil
		}
		utils.InteractRespUpdateMessage(s, i, content, components)
		return nil
	}
}

func blackjackStandHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		found := as.Games.Blackjack.Update(actorID, func(game *blackjack.Game) bool {
			res := game.Stand()
			var verdict string
			switch res.Outcome {
			case blackjack.PlayerWin:
				if res.DealerTotal > 21 {
					verdict = "Dealer busts — you win! 🎉"
				} else {
					verdict = "You win! 🎉"
				}
			case blackjack.Push:
				verdict = "Push. Nobody wins."
			default:
				verdict = "Dealer wins. 😥"
			}
			content = fmt.Sprintf(
				"Your hand: %s (total %d)\nDealer's hand: %s (total %d)\n\n%s",
				handLine(game.Player), res.PlayerTotal,
				handLine(game.Dealer), res.DealerTotal,
				verdict,
			)
			return false
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found. Start one with /blackjack.")
			return nil
		}
		utils.InteractRespUpdateMessage(s, i, content, []discordgo.MessageComponent{})
		return nil
	}
}
