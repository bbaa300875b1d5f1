package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/game/typerace"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type typeraceIDs struct {
	begin  string
	submit string
	modal  string
	board  string
}

func newTyperaceIDs(raceID string) typeraceIDs {
	return typeraceIDs{
		begin:  "typerace-begin-" + raceID,
		submit: "typerace-submit-" + raceID,
		modal:  "typerace-modal-" + raceID,
		board:  "typerace-board-" + raceID,
	}
}

func (ids typeraceIDs) removeAll(as *utils.AppState) {
	as.RemoveAppCmdHandler(ids.begin)
	as.RemoveAppCmdHandler(ids.submit)
	as.RemoveAppCmdHandler(ids.modal)
	as.RemoveAppCmdHandler(ids.board)
}

func TypeRace(as *utils.AppState) {
	id := "typerace"
	as.AddAppCmdHandler(id, typeRaceHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Host a typing race for the channel.",
	})
}

func typeRaceComponents(ids typeraceIDs, started bool) []discordgo.MessageComponent {
	buttons := []discordgo.MessageComponent{}
	if !started {
		buttons = append(buttons, discordgo.Button{
			Label:    "Begin",
			Style:    discordgo.PrimaryButton,
			CustomID: ids.begin,
		})
	} else {
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Submit",
				Style:    discordgo.PrimaryButton,
				CustomID: ids.submit,
			},
			discordgo.Button{
				Label:    "Leaderboard",
				Style:    discordgo.SecondaryButton,
				CustomID: ids.board,
			},
		)
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func typeRaceHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "typerace")
		hostID := utils.InteractionUserID(i)

		raceID := uuid.NewString()
		as.Games.TypeRace.Put(raceID, typerace.NewRace(hostID))

		ids := newTyperaceIDs(raceID)
		as.AddAppCmdHandler(ids.begin, typeRaceBeginHandler(as, raceID, ids))
		as.AddAppCmdHandler(ids.submit, typeRaceSubmitHandler(as, raceID, ids))
		as.AddAppCmdHandler(ids.modal, typeRaceModalHandler(as, raceID, ids))
		as.AddAppCmdHandler(ids.board, typeRaceBoardHandler(as, raceID, ids))

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				// the passage stays hidden until the host presses Begin
				Content: fmt.Sprintf(
					"⌨️ Type race hosted by <@%s>! The passage is revealed when the host begins.",
					hostID,
				),
				Components: typeRaceComponents(ids, false),
			},
		}); err != nil {
			slog.Warn("typeRaceHandler: can't respond", "error", err)
			as.Games.TypeRace.Delete(raceID)
			ids.removeAll(as)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

func typeRaceBeginHandler(as *utils.AppState, raceID string, ids typeraceIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		var userErr error
		found := as.Games.TypeRace.Update(raceID, func(race *typerace.Race) bool {
			if err := race.Begin(actorID, time.Now()); err != nil {
				userErr = err
				return true
			}
			content = fmt.Sprintf(
				"⌨️ Race on! Type this, then press Submit:\n> %s",
				race.Passage,
			)
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Race not found.")
			ids.removeAll(as)
			return nil
		}
		if userErr != nil {
			utils.InteractRespHiddenReply(s, i, "Only the host can start the race, and only once.")
			return nil
		}
		utils.InteractRespUpdateMessage(s, i, content, typeRaceComponents(ids, true))
		return nil
	}
}

func typeRaceSubmitHandler(as *utils.AppState, raceID string, ids typeraceIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if _, ok := as.Games.TypeRace.Load(raceID); !ok {
			utils.InteractRespHiddenReply(s, i, "Race not found.")
			ids.removeAll(as)
			return nil
		}
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID: ids.modal,
				Title:    "Type race",
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.TextInput{
								CustomID: "typerace-input",
								Label:    "Type the passage here",
								Style:    discordgo.TextInputParagraph,
								Required: true,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("typeRaceSubmitHandler: can't open modal", "error", err)
		}
		return nil
	}
}

func typeRaceModalHandler(as *utils.AppState, raceID string, ids typeraceIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		typed := ""
		for _, row := range i.ModalSubmitData().Components {
			actionsRow, ok := row.(*discordgo.ActionsRow)
			if !ok {
				continue
			}
			for _, comp := range actionsRow.Components {
				if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == "typerace-input" {
					typed = input.Value
				}
			}
		}

		var stats typerace.Stats
		var userErr error
		found := as.Games.TypeRace.Update(raceID, func(race *typerace.Race) bool {
			stats, userErr = race.Submit(actorID, typed, time.Now())
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Race not found.")
			ids.removeAll(as)
			return nil
		}
		if userErr != nil {
			if errors.Is(userErr, typerace.ErrNotStarted) {
				utils.InteractRespHiddenReply(s, i, "The race hasn't started yet.")
			} else {
				utils.InteractRespHiddenReply(s, i, "Couldn't score that run.")
			}
			return nil
		}
		utils.InteractRespReply(s, i, fmt.Sprintf(
			"⌨️ <@%s> finished in %.1fs — **%.0f WPM** net (%.0f gross, %.0f%% accuracy)",
			actorID, stats.Elapsed.Seconds(), stats.NetWPM, stats.GrossWPM, stats.Accuracy*100,
		))
		return nil
	}
}

func typeRaceBoardHandler(as *utils.AppState, raceID string, ids typeraceIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		var board []typerace.Entry
		found := as.Games.TypeRace.Update(raceID, func(race *typerace.Race) bool {
			board = race.Leaderboard()
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Race not found.")
			ids.removeAll(as)
			return nil
		}
		if len(board) == 0 {
			utils.InteractRespHiddenReply(s, i, "No finishes yet.")
			return nil
		}
		var sb strings.Builder
		sb.WriteString("**Leaderboard**\n")
		for place, entry := range board {
			fmt.Fprintf(&sb, "%d. <@%s> — %.0f WPM net, %.0f%% accuracy\n",
				place+1, entry.ActorID, entry.Stats.NetWPM, entry.Stats.Accuracy*100)
		}
		utils.InteractRespHiddenReply(s, i, sb.String())
		return nil
	}
}
