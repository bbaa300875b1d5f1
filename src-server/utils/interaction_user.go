package utils

import "github.com/bwmarrin/discordgo"

// InteractionUserID returns the acting user's id whether the interaction
// came from a guild (Member set) or a DM (User set).
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
