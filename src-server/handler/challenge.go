package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/game/rps"
	"saaf/src-server/ledger"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Challenge(as *utils.AppState) {
	id := "challenge"
	as.AddAppCmdHandler(id, challengeHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Challenge to a match of rock paper scissors.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "object",
				Description: "Pick your object",
				Required:    true,
				Choices: func() []*discordgo.ApplicationCommandOptionChoice {
					choices := make([]*discordgo.ApplicationCommandOptionChoice, 0)
					for _, name := range rps.Names() {
						choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
							Name:  utils.CleanupString(name),
							Value: name,
						})
					}
					return choices
				}(),
			},
		},
	})
}

func challengeHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "challenge")

		challengerID := utils.InteractionUserID(i)
		choice := i.ApplicationCommandData().Options[0].StringValue()

		gameID := i.ID
		as.Games.RPS.Put(gameID, rps.Challenge{ChallengerID: challengerID, Choice: choice})

		acceptID := "rps-accept-" + gameID
		as.AddAppCmdHandler(acceptID, rpsAcceptHandler(as, gameID, acceptID))

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Rock paper scissors challenge from <@%s>", challengerID),
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.Button{
								Label:    "Accept",
								Style:    discordgo.PrimaryButton,
								CustomID: acceptID,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("challengeHandler: can't respond", "error", err)
			as.Games.RPS.Delete(gameID)
			as.RemoveAppCmdHandler(acceptID)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func rpsAcceptHandler(as *utils.AppState, gameID, acceptID string) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		// the challenger accepting their own challenge plays the house,
		// which claims the challenge inside the same critical section
		// that read it; anyone else leaves it pending for their select
		var challenge rps.Challenge
		houseMatch := false
		found := as.Games.RPS.Update(gameID, func(c rps.Challenge) bool {
			challenge = c
			houseMatch = actorID == c.ChallengerID
			return !houseMatch
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			as.RemoveAppCmdHandler(acceptID)
			return nil
		}

		if houseMatch {
			as.RemoveAppCmdHandler(acceptID)

			houseChoice := rps.HouseChoice()
			summary := resolveRps(as, challenge, rps.HouseID, houseChoice)
			challengerRec := as.Ledger.Get(challenge.ChallengerID)
			houseRec := as.Ledger.Get(rps.HouseID)
			summary += fmt.Sprintf(
				"\n\n**Records**\n• <@%s> — %d-%d-%d\n• %s — %d-%d-%d",
				challenge.ChallengerID, challengerRec.Wins, challengerRec.Losses, challengerRec.Ties,
				rps.HouseName, houseRec.Wins, houseRec.Losses, houseRec.Ties,
			)
			utils.InteractRespUpdateMessage(s, i, summary, []discordgo.MessageComponent{})
			return nil
		}

		// a second human: ask for their object in private
		selectID := "rps-select-" + gameID
		challengeMessage := i.Message
		as.AddAppCmdHandler(selectID, rpsSelectHandler(as, gameID, acceptID, selectID, challengeMessage))

		options := make([]discordgo.SelectMenuOption, 0)
		for _, name := range rps.ShuffledNames() {
			options = append(options, discordgo.SelectMenuOption{
				Label:       utils.CleanupString(name),
				Value:       name,
				Description: rps.Describe(name),
			})
		}
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags:   discordgo.MessageFlagsEphemeral,
				Content: "What is your object of choice?",
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.SelectMenu{
								CustomID: selectID,
								Options:  options,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("rpsAcceptHandler: can't respond with object select", "error", err)
			as.RemoveAppCmdHandler(selectID)
		}
		return nil
	}
}

func rpsSelectHandler(as *utils.AppState, gameID, acceptID, selectID string, challengeMessage *discordgo.Message) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)
		chosen := i.MessageComponentData().Values[0]

		// consumed exactly once: the read and the delete share one
		// critical section, so a second in-flight select can't also claim
		var challenge rps.Challenge
		claimed := as.Games.RPS.Update(gameID, func(c rps.Challenge) bool {
			challenge = c
			return false
		})
		if !claimed {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			as.RemoveAppCmdHandler(selectID)
			return nil
		}
		as.RemoveAppCmdHandler(acceptID)
		as.RemoveAppCmdHandler(selectID)

		summary := resolveRps(as, challenge, actorID, chosen)
		utils.InteractRespReply(s, i, summary)

		// retire the accept button on the public challenge message;
		// allowed to fail independently of the game state
		if challengeMessage != nil {
			if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
				Channel:    challengeMessage.ChannelID,
				ID:         challengeMessage.ID,
				Components: &[]discordgo.MessageComponent{},
			}); err != nil {
				slog.Warn("rpsSelectHandler: can't retire challenge message", "error", err)
			}
		}
		return nil
	}
}

// resolveRps decides the match, bumps both ledger records and renders the
// outcome line.
func resolveRps(as *utils.AppState, challenge rps.Challenge, opponentID, opponentChoice string) string {
	winner := rps.Decide(challenge.Choice, opponentChoice)
	switch winner {
	case rps.P1:
		as.Ledger.Bump(challenge.ChallengerID, ledger.Win)
		as.Ledger.Bump(opponentID, ledger.Loss)
		return fmt.Sprintf("%s's **%s** %s %s's **%s**",
			rpsMention(challenge.ChallengerID), challenge.Choice,
			rps.Verb(challenge.Choice, opponentChoice),
			rpsMention(opponentID), opponentChoice)
	case rps.P2:
		as.Ledger.Bump(challenge.ChallengerID, ledger.Loss)
		as.Ledger.Bump(opponentID, ledger.Win)
		return fmt.Sprintf("%s's **%s** %s %s's **%s**",
			rpsMention(opponentID), opponentChoice,
			rps.Verb(opponentChoice, challenge.Choice),
			rpsMention(challenge.ChallengerID), challenge.Choice)
	default:
		as.Ledger.Bump(challenge.ChallengerID, ledger.Tie)
		as.Ledger.Bump(opponentID, ledger.Tie)
		if strings.EqualFold(challenge.Choice, opponentChoice) {
			return fmt.Sprintf("%s and %s draw with **%s**",
				rpsMention(challenge.ChallengerID), rpsMention(opponentID), challenge.Choice)
		}
		// objects with no relation either way
		return fmt.Sprintf("%s's **%s** and %s's **%s** have no quarrel. It's a draw",
			rpsMention(challenge.ChallengerID), challenge.Choice,
			rpsMention(opponentID), opponentChoice)
	}
}

func rpsMention(actorID string) string {
	if actorID == rps.HouseID {
		return rps.HouseName
	}
	return "<@" + actorID + ">"
}
