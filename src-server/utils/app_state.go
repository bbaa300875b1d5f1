package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"saaf/src-server/game/blackjack"
	"saaf/src-server/game/hangman"
	"saaf/src-server/game/hilo"
	"saaf/src-server/game/rps"
	"saaf/src-server/game/songguess"
	"saaf/src-server/game/tictactoe"
	"saaf/src-server/game/typerace"
	"saaf/src-server/gamestore"
	"saaf/src-server/ledger"

	"github.com/bwmarrin/discordgo"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// GameStores holds one in-memory registry per game kind. Challenge-style
// games are keyed by the originating interaction id (or a fresh uuid),
// single-player games by the actor id.
type GameStores struct {
	RPS       *gamestore.Store[rps.Challenge]
	Hangman   *gamestore.Store[*hangman.Game]
	HiLo      *gamestore.Store[*hilo.Game]
	Blackjack *gamestore.Store[*blackjack.Game]
	TicTacToe *gamestore.Store[*tictactoe.Game]
	SongGuess *gamestore.Store[*songguess.Game]
	TypeRace  *gamestore.Store[*typerace.Race]
}

type AppState struct {
	Config    *Config
	RawDB     *sql.DB
	BunDB     *bun.DB
	DgSession *discordgo.Session
	When      *when.Parser

	Games  *GameStores
	Ledger *ledger.Ledger

	// will be sent to Discord
	appCmdInfo map[string]*discordgo.ApplicationCommand
	// handling commands, buttons, dropdowns and modals from Discord WSAPI
	appCmdHandler map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error
	appCmdMutex   sync.RWMutex

	MetricChans *Metric

	AppCloseSignalChan    chan os.Signal
	gracefulShutdownChans []chan struct{}
	gracefulShutdownMutex sync.Mutex

	startedAt time.Time
}

func NewAppState() *AppState {
	as := &AppState{
		appCmdInfo:         make(map[string]*discordgo.ApplicationCommand),
		appCmdHandler:      make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error),
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		startedAt:          time.Now(),
	}

	as.Games = &GameStores{
		RPS:       gamestore.New[rps.Challenge](),
		Hangman:   gamestore.New[*hangman.Game](),
		HiLo:      gamestore.New[*hilo.Game](),
		Blackjack: gamestore.New[*blackjack.Game](),
		TicTacToe: gamestore.New[*tictactoe.Game](),
		SongGuess: gamestore.New[*songguess.Game](),
		TypeRace:  gamestore.New[*typerace.Race](),
	}
	as.Ledger = ledger.New()

	// date parser, for the free-text zodiac birthday
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	// database
	var err error
	as.RawDB, err = sql.Open(sqliteshim.ShimName, as.Config.GetDatabasePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as.RawDB.SetMaxIdleConns(8)
	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())

	// discord session
	as.DgSession, err = discordgo.New("Bot " + as.Config.GetDiscordAppToken())
	if err != nil {
		slog.Error("cannot create discord session", "error", err)
		os.Exit(1)
	}

	return as
}

func (as *AppState) AddAppCmdInfo(id string, info *discordgo.ApplicationCommand) {
	as.appCmdMutex.Lock()
	defer as.appCmdMutex.Unlock()
	as.appCmdInfo[id] = info
}

func (as *AppState) IterateAppCmdInfo(fn func(k string, v *discordgo.ApplicationCommand)) {
	as.appCmdMutex.RLock()
	defer as.appCmdMutex.RUnlock()
	for k, v := range as.appCmdInfo {
		fn(k, v)
	}
}

// NukeAppCmdInfo drops the command metadata after it has been sent to
// Discord; only the handlers are needed from then on.
func (as *AppState) NukeAppCmdInfo() {
	as.appCmdMutex.Lock()
	defer as.appCmdMutex.Unlock()
	as.appCmdInfo = make(map[string]*discordgo.ApplicationCommand)
}

// AddAppCmdHandler registers a handler under a command name or a component
// /modal custom id. Temporary per-game custom ids go through here too;
// remove them when the game reaches a terminal state.
func (as *AppState) AddAppCmdHandler(id string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate) error) {
	as.appCmdMutex.Lock()
	defer as.appCmdMutex.Unlock()
	as.appCmdHandler[id] = handler
}

func (as *AppState) RemoveAppCmdHandler(id string) {
	as.appCmdMutex.Lock()
	defer as.appCmdMutex.Unlock()
	delete(as.appCmdHandler, id)
}

func (as *AppState) GetAppCmdHandler(id string) (func(s *discordgo.Session, i *discordgo.InteractionCreate) error, bool) {
	as.appCmdMutex.RLock()
	defer as.appCmdMutex.RUnlock()
	handler, ok := as.appCmdHandler[id]
	return handler, ok
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startedAt).Round(time.Second)
}

// CreateGracefulShutdownChan returns a channel that closes when
// GracefulShutdown runs; long-lived goroutines select on it.
func (as *AppState) CreateGracefulShutdownChan() <-chan struct{} {
	as.gracefulShutdownMutex.Lock()
	defer as.gracefulShutdownMutex.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMutex.Lock()
	defer as.gracefulShutdownMutex.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(ch)
	}
	as.gracefulShutdownChans = nil

	if err := as.RawDB.Close(); err != nil {
		slog.Warn("can't close sqlite database", "error", err)
	}
}
