package bot

import (
	"context"
	"fmt"

	"economy/bot/common"
	"economy/bot/features/balance"
	"economy/bot/features/gambling"
	"economy/bot/features/ranking"
	"economy/bot/features/work"
	"economy/events"
	"economy/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token             string
	Prefix            string
	AnnounceChannelID string
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	config  Config
	session *discordgo.Session

	// Feature modules
	gambling *gambling.Feature
	work     *work.Feature
	balance  *balance.Feature
	ranking  *ranking.Feature
}

// New creates a new bot instance and opens the gateway connection
func New(config Config, ledger service.LedgerService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	bot := newBot(config, dg, ledger)
	dg.AddHandler(bot.handleMessageCreate)

	if err := bot.connect(dg, eventBus, dg); err != nil {
		return nil, err
	}

	log.WithField("prefix", config.Prefix).Info("Bot connected")
	return bot, nil
}

// gateway is the connection lifecycle of a session. Satisfied by *discordgo.Session.
type gateway interface {
	Open() error
	Close() error
}

// connect opens the gateway, then subscribes the bus handlers. A failed open
// closes the session and leaves the bus untouched.
func (b *Bot) connect(gw gateway, eventBus *events.Bus, sender ChannelSender) error {
	if err := gw.Open(); err != nil {
		if closeErr := gw.Close(); closeErr != nil {
			log.WithError(closeErr).Warn("Error closing session after failed open")
		}
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.config.AnnounceChannelID != "" {
		b.subscribeJackpotAnnouncements(eventBus, sender)
	}
	return nil
}

func newBot(config Config, session *discordgo.Session, ledger service.LedgerService) *Bot {
	return &Bot{
		config:   config,
		session:  session,
		gambling: gambling.New(ledger),
		work:     work.New(ledger),
		balance:  balance.New(ledger),
		ranking:  ranking.New(ledger),
	}
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// handleMessageCreate dispatches prefixed text commands
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	b.dispatch(context.Background(), s, m.Message)
}

// dispatch routes a message to its feature handler. Unknown input is ignored.
func (b *Bot) dispatch(ctx context.Context, r common.Responder, m *discordgo.Message) {
	command, args, ok := ParseCommand(b.config.Prefix, m.Content)
	if !ok {
		return
	}

	inv, err := common.NewInvocation(m, args)
	if err != nil {
		log.WithError(err).WithField("author_id", m.Author.ID).Error("Error parsing Discord ID")
		return
	}

	log.WithFields(log.Fields{
		"command":    command,
		"discord_id": inv.DiscordID,
		"guild_id":   inv.GuildID,
	}).Debug("Handling command")

	switch command {
	case CommandCoinFlip:
		b.gambling.HandleCoinFlip(ctx, r, inv)
	case CommandDiceRoll:
		b.gambling.HandleDiceRoll(ctx, r, inv)
	case CommandJackpotPlay:
		b.gambling.HandleJackpot(ctx, r, inv)
	case CommandWork:
		b.work.HandleWork(ctx, r, inv)
	case CommandBalance:
		b.balance.HandleBalance(ctx, r, inv)
	case CommandTopRanking:
		b.ranking.HandleTopRanking(ctx, r, inv)
	case CommandFullRanking:
		b.ranking.HandleFullRanking(ctx, r, inv)
	}
}
