package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/game/tictactoe"
	"saaf/src-server/ledger"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type tictactoeIDs struct {
	accept string
	cells  [9]string
}

func newTictactoeIDs(gameID string) tictactoeIDs {
	ids := tictactoeIDs{accept: "ttt-accept-" + gameID}
	for n := range ids.cells {
		ids.cells[n] = fmt.Sprintf("ttt-cell-%s-%d", gameID, n)
	}
	return ids
}

func (ids tictactoeIDs) removeAll(as *utils.AppState) {
	as.RemoveAppCmdHandler(ids.accept)
	for _, id := range ids.cells {
		as.RemoveAppCmdHandler(id)
	}
}

func TicTacToe(as *utils.AppState) {
	id := "tictactoe"
	as.AddAppCmdHandler(id, tictactoeHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Challenge the channel to a game of tic-tac-toe.",
	})
}

func tictactoeHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "tictactoe")
		creatorID := utils.InteractionUserID(i)

		gameID := uuid.NewString()
		as.Games.TicTacToe.Put(gameID, tictactoe.New(creatorID))

		ids := newTictactoeIDs(gameID)
		as.AddAppCmdHandler(ids.accept, tttAcceptHandler(as, gameID, ids))
		for n, cellID := range ids.cells {
			as.AddAppCmdHandler(cellID, tttCellHandler(as, gameID, ids, n))
		}

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("Tic-tac-toe challenge from <@%s>, who plays X. Anyone up for O?", creatorID),
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.Button{
								Label:    "Accept",
								Style:    discordgo.PrimaryButton,
								CustomID: ids.accept,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("tictactoeHandler: can't respond", "error", err)
			as.Games.TicTacToe.Delete(gameID)
			ids.removeAll(as)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

// tttBoardComponents renders the board as three rows of cell buttons. Taken
// cells and finished boards render disabled.
func tttBoardComponents(game *tictactoe.Game, ids tictactoeIDs) []discordgo.MessageComponent {
	rows := make([]discordgo.MessageComponent, 0, 3)
	for row := 0; row < 3; row++ {
		buttons := make([]discordgo.MessageComponent, 0, 3)
		for col := 0; col < 3; col++ {
			n := row*3 + col
			mark := game.Board[n]
			label := "·"
			style := discordgo.SecondaryButton
			switch mark {
			case tictactoe.X:
				label = "X"
				style = discordgo.PrimaryButton
			case tictactoe.O:
				label = "O"
				style = discordgo.DangerButton
			}
			buttons = append(buttons, discordgo.Button{
				Label:    label,
				Style:    style,
				CustomID: ids.cells[n],
				Disabled: mark != tictactoe.Empty || game.Finished,
			})
		}
		rows = append(rows, discordgo.ActionsRow{Components: buttons})
	}
	return rows
}

// tttErrLine turns a rule violation into a one-line notice for the actor.
func tttErrLine(err error) string {
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

func tttStatusLine(game *tictactoe.Game) string {
	switch {
	case game.Finished && game.Draw:
		return "It's a draw!"
	case game.Finished && game.Winner == tictactoe.X:
		return fmt.Sprintf("**%s** wins — <@%s>! 🎉", game.Winner, game.XPlayerID)
	case game.Finished:
		return fmt.Sprintf("**%s** wins — <@%s>! 🎉", game.Winner, game.OPlayerID)
	case game.Turn == tictactoe.X:
		return fmt.Sprintf("<@%s>'s turn (X)", game.XPlayerID)
	default:
		return fmt.Sprintf("<@%s>'s turn (O)", game.OPlayerID)
	}
}

func tttAcceptHandler(as *utils.AppState, gameID string, ids tictactoeIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		var components []discordgo.MessageComponent
		var userErr error
		found := as.Games.TicTacToe.Update(gameID, func(game *tictactoe.Game) bool {
			if err := game.Accept(actorID); err != nil {
				userErr = err
				return true
			}
			content = fmt.Sprintf(
				"Tic-tac-toe: <@%s> (X) vs <@%s> (O)\n%s",
				game.XPlayerID, game.OPlayerID, tttStatusLine(game),
			)
			components = tttBoardComponents(game, ids)
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			ids.removeAll(as)
			return nil
		}
		if userErr != nil {
			utils.InteractRespHiddenReply(s, i, tttErrLine(userErr))
			return nil
		}
		as.RemoveAppCmdHandler(ids.accept)
		utils.InteractRespUpdateMessage(s, i, content, components)
		return nil
	}
}

func tttCellHandler(as *utils.AppState, gameID string, ids tictactoeIDs, cell int) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var content string
		var components []discordgo.MessageComponent
		var userErr error
		var finished bool
		found := as.Games.TicTacToe.Update(gameID, func(game *tictactoe.Game) bool {
			if err := game.Move(actorID, cell); err != nil {
				userErr = err
				return true
			}
			if game.Finished {
				finished = true
				switch game.Winner {
				case tictactoe.X:
					as.Ledger.Bump(game.XPlayerID, ledger.Win)
					as.Ledger.Bump(game.OPlayerID, ledger.Loss)
				case tictactoe.O:
					as.Ledger.Bump(game.OPlayerID, ledger.Win)
					as.Ledger.Bump(game.XPlayerID, ledger.Loss)
				default:
					as.Ledger.Bump(game.XPlayerID, ledger.Tie)
					as.Ledger.Bump(game.OPlayerID, ledger.Tie)
				}
			}
			content = fmt.Sprintf(
				"Tic-tac-toe: <@%s> (X) vs <@%s> (O)\n%s",
				game.XPlayerID, game.OPlayerID, tttStatusLine(game),
			)
			components = tttBoardComponents(game, ids)
			// terminal boards stay in the store; the Finished flag and
			// the disabled buttons block further moves
			return true
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			ids.removeAll(as)
			return nil
		}
		if userErr != nil {
			utils.InteractRespHiddenReply(s, i, tttErrLine(userErr))
			return nil
		}
		if finished {
			ids.removeAll(as)
		}
		utils.InteractRespUpdateMessage(s, i, content, components)
		return nil
	}
}
