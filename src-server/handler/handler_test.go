package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"saaf/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

// noopTransport swallows every REST call the session makes so handlers can
// run against a session that never reaches Discord.
type noopTransport struct{}

func (noopTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     make(http.Header),
	}, nil
}

func newTestAppState(t *testing.T) *utils.AppState {
	t.Helper()
	t.Setenv("DISCORD_GUILD_ID", "test-guild")
	t.Setenv("DISCORD_APP_TOKEN", "test-token")
	t.Setenv("DISCORD_CLIENT_ID", "test-client")
	t.Setenv("DATABASE_PATH", t.TempDir()+"/test.db")

	as := utils.NewAppState()
	as.DgSession.Client = &http.Client{Transport: noopTransport{}}
	return as
}

func componentInteraction(userID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			User: &discordgo.User{ID: userID},
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      customID,
				ComponentType: discordgo.ButtonComponent,
				Values:        values,
			},
		},
	}
}
