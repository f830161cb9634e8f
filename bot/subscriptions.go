package bot

import (
	"context"

	"economy/bot/features/gambling"
	"economy/events"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// ChannelSender posts embeds to a channel. Satisfied by *discordgo.Session.
type ChannelSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// subscribeJackpotAnnouncements posts jackpot wins to the announce channel
func (b *Bot) subscribeJackpotAnnouncements(eventBus *events.Bus, sender ChannelSender) {
	eventBus.Subscribe(events.EventTypeJackpotWon, func(ctx context.Context, event events.Event) {
		won, ok := event.(events.JackpotWonEvent)
		if !ok {
			log.Errorf("Invalid event type for jackpot announcement: %T", event)
			return
		}

		embed := gambling.BuildJackpotAnnouncementEmbed(won.UserID, won.Payout, won.Jackpot)
		if _, err := sender.ChannelMessageSendEmbed(b.config.AnnounceChannelID, embed); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"channel_id": b.config.AnnounceChannelID,
				"discord_id": won.UserID,
			}).Error("Failed to announce jackpot win")
		}
	})

	log.WithField("channel_id", b.config.AnnounceChannelID).Info("Jackpot announcements enabled")
}
