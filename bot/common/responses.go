package common

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Responder sends replies to a channel. Satisfied by *discordgo.Session.
type Responder interface {
	ChannelMessageSendEmbedReply(channelID string, embed *discordgo.MessageEmbed, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Invocation is a parsed command message
type Invocation struct {
	ChannelID  string
	MessageID  string
	GuildID    string
	DiscordID  int64
	AuthorName string
	Args       []string
}

// NewInvocation builds an invocation from a message and its arguments
func NewInvocation(m *discordgo.Message, args []string) (*Invocation, error) {
	discordID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		return nil, err
	}

	name := m.Author.GlobalName
	if name == "" {
		name = m.Author.Username
	}

	return &Invocation{
		ChannelID:  m.ChannelID,
		MessageID:  m.ID,
		GuildID:    m.GuildID,
		DiscordID:  discordID,
		AuthorName: name,
		Args:       args,
	}, nil
}

// Arg returns the i-th argument or an empty string
func (inv *Invocation) Arg(i int) string {
	if i < len(inv.Args) {
		return inv.Args[i]
	}
	return ""
}

// StakeArg parses the i-th argument as a stake. Missing or non-integer input yields 0.
func (inv *Invocation) StakeArg(i int) int64 {
	stake, err := strconv.ParseInt(inv.Arg(i), 10, 64)
	if err != nil {
		return 0
	}
	return stake
}

// Reply sends embed as a reply to the invoking message
func Reply(r Responder, inv *Invocation, embed *discordgo.MessageEmbed) {
	reference := &discordgo.MessageReference{
		MessageID: inv.MessageID,
		ChannelID: inv.ChannelID,
		GuildID:   inv.GuildID,
	}
	if _, err := r.ChannelMessageSendEmbedReply(inv.ChannelID, embed, reference); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"channel_id": inv.ChannelID,
			"message_id": inv.MessageID,
		}).Error("Failed to send reply")
	}
}
