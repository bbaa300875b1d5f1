package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"saaf/src-server/game/hangman"
	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Hangman(as *utils.AppState) {
	id := "hangman"
	as.AddAppCmdHandler(id, hangmanHandler(as))
	as.AddAppCmdInfo(id, &discordgo.ApplicationCommand{
		Name:        id,
		Description: "Start a game of hangman.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "length",
				Description: "Ask for a word of this exact length.",
				Required:    false,
				MinValue:    func() *float64 { v := 1.0; return &v }(),
			},
		},
	})
}

// one handler id per interactive piece of a running game
type hangmanIDs struct {
	firstSelect  string
	secondSelect string
	solveButton  string
	solveModal   string
}

func newHangmanIDs(gameID string) hangmanIDs {
	return hangmanIDs{
		firstSelect:  "hangman-guess1-" + gameID,
		secondSelect: "hangman-guess2-" + gameID,
		solveButton:  "hangman-solve-" + gameID,
		solveModal:   "hangman-solve-modal-" + gameID,
	}
}

func (ids hangmanIDs) removeAll(as *utils.AppState) {
	as.RemoveAppCmdHandler(ids.firstSelect)
	as.RemoveAppCmdHandler(ids.secondSelect)
	as.RemoveAppCmdHandler(ids.solveButton)
	as.RemoveAppCmdHandler(ids.solveModal)
}

func hangmanHandler(as *utils.AppState) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		trackUsage(as, i, "hangman")
		hostID := utils.InteractionUserID(i)

		// requested length first, full corpus as fallback
		var word string
		var ok bool
		for _, opt := range i.ApplicationCommandData().Options {
			if opt.Name == "length" {
				word, ok = hangman.PickByLength(int(opt.IntValue()))
			}
		}
		if !ok {
			word, ok = hangman.PickRandom()
		}
		if !ok {
			utils.InteractRespHiddenReply(s, i, "Sorry — no words available right now.")
			return nil
		}

		gameID := i.ID
		game := hangman.New(word, hostID)
		as.Games.Hangman.Put(gameID, game)

		ids := newHangmanIDs(gameID)
		as.AddAppCmdHandler(ids.firstSelect, hangmanGuessHandler(as, gameID, ids))
		as.AddAppCmdHandler(ids.secondSelect, hangmanGuessHandler(as, gameID, ids))
		as.AddAppCmdHandler(ids.solveButton, hangmanSolveButtonHandler(ids))
		as.AddAppCmdHandler(ids.solveModal, hangmanSolveModalHandler(as, gameID, ids))

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf(
					"Hangman started by <@%s> — Word: `%s`  (wrong: 0/%d)",
					hostID, game.Masked(), hangman.MaxWrong,
				),
				Components: hangmanComponents(game, ids),
			},
		}); err != nil {
			slog.Warn("hangmanHandler: can't respond", "error", err)
			as.Games.Hangman.Delete(gameID)
			ids.removeAll(as)
			return nil
		}
		as.MetricChans.DiscordSendMessage <- float64(time.Since(startTimer).Microseconds())
		return nil
	}
}

// hangmanComponents renders the remaining-letter selects (a-m / n-z, rows
// dropped when emptied) plus the solve button.
func hangmanComponents(game *hangman.Game, ids hangmanIDs) []discordgo.MessageComponent {
	var first, second []discordgo.SelectMenuOption
	for _, ch := range game.RemainingLetters() {
		opt := discordgo.SelectMenuOption{
			Label: strings.ToUpper(string(ch)),
			Value: string(ch),
		}
		if ch <= 'm' {
			first = append(first, opt)
		} else {
			second = append(second, opt)
		}
	}

	components := make([]discordgo.MessageComponent, 0, 3)
	if len(first) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    ids.firstSelect,
					Placeholder: "Guess a letter (A-M)",
					Options:     first,
				},
			},
		})
	}
	if len(second) > 0 {
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    ids.secondSelect,
					Placeholder: "Guess a letter (N-Z)",
					Options:     second,
				},
			},
		})
	}
	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Solve",
				Style:    discordgo.SecondaryButton,
				CustomID: ids.solveButton,
			},
		},
	})
	return components
}

func hangmanGuessHandler(as *utils.AppState, gameID string, ids hangmanIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		letter := []rune(i.MessageComponentData().Values[0])[0]

		var res hangman.GuessResult
		var content string
		var components []discordgo.MessageComponent
		found := as.Games.Hangman.Update(gameID, func(game *hangman.Game) bool {
			res = game.GuessLetter(letter)
			if res.AlreadyGuessed {
				return true
			}
			switch res.Status {
			case hangman.Solved:
				content = fmt.Sprintf("🎉 Solved! The word was **%s**", game.Word)
				return false
			case hangman.Lost:
				content = fmt.Sprintf("☠️ Game over — the word was **%s**", game.Word)
				return false
			default:
				content = fmt.Sprintf("Hangman — Word: `%s`  (wrong: %d/%d)",
					game.Masked(), game.Wrong, hangman.MaxWrong)
				if len(game.WrongLetters) > 0 {
					missed := make([]string, 0, len(game.WrongLetters))
					for _, ch := range game.WrongLetters {
						missed = append(missed, strings.ToUpper(string(ch)))
					}
					content += "  missed: " + strings.Join(missed, ", ")
				}
				components = hangmanComponents(game, ids)
				return true
			}
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			return nil
		}
		if res.AlreadyGuessed {
			utils.InteractRespHiddenReply(s, i, "Already guessed.")
			return nil
		}
		if res.Status != hangman.Active {
			ids.removeAll(as)
		}
		utils.InteractRespUpdateMessage(s, i, content, components)
		return nil
	}
}

func hangmanSolveButtonHandler(ids hangmanIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID: ids.solveModal,
				Title:    "Solve Hangman",
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.TextInput{
								CustomID:  "solve-input",
								Label:     "Enter full word",
								Style:     discordgo.TextInputShort,
								Required:  true,
								MinLength: 1,
							},
						},
					},
				},
			},
		}); err != nil {
			slog.Warn("hangmanSolveButtonHandler: can't open modal", "error", err)
		}
		return nil
	}
}

func hangmanSolveModalHandler(as *utils.AppState, gameID string, ids hangmanIDs) func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		actorID := utils.InteractionUserID(i)

		var guess string
		for _, row := range i.ModalSubmitData().Components {
			actionsRow, ok := row.(*discordgo.ActionsRow)
			if !ok {
				continue
			}
			for _, comp := range actionsRow.Components {
				if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == "solve-input" {
					guess = input.Value
				}
			}
		}
		if guess == "" {
			utils.InteractRespHiddenReply(s, i, "Error processing solve.")
			return nil
		}

		var res hangman.SolveResult
		var word string
		var wrong int
		found := as.Games.Hangman.Update(gameID, func(game *hangman.Game) bool {
			res = game.Solve(guess)
			word = game.Word
			wrong = game.Wrong
			return res.Status == hangman.Active
		})
		if !found {
			utils.InteractRespHiddenReply(s, i, "Game not found.")
			return nil
		}

		switch {
		case res.Correct:
			ids.removeAll(as)
			utils.InteractRespReply(s, i, fmt.Sprintf("🎉 <@%s> solved it! Word: **%s**", actorID, word))
			retireGameMessage(s, i.Message)
		case res.Status == hangman.Lost:
			ids.removeAll(as)
			utils.InteractRespReply(s, i, fmt.Sprintf("☠️ Game over — the word was **%s**", word))
			retireGameMessage(s, i.Message)
		default:
			utils.InteractRespHiddenReply(s, i, fmt.Sprintf("Incorrect. Wrong: %d/%d", wrong, hangman.MaxWrong))
		}
		return nil
	}
}

// retireGameMessage strips the interactive components off a finished
// game's message; fire-and-forget.
func retireGameMessage(s *discordgo.Session, message *discordgo.Message) {
	if message == nil {
		return
	}
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    message.ChannelID,
		ID:         message.ID,
		Components: &[]discordgo.MessageComponent{},
	}); err != nil {
		slog.Warn("retireGameMessage: can't edit message", "error", err)
	}
}
