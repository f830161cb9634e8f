package bot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"economy/events"
	"economy/models"
	"economy/service"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingResponder struct {
	mu      sync.Mutex
	replies []*discordgo.MessageEmbed
	refs    []*discordgo.MessageReference
}

func (r *recordingResponder) ChannelMessageSendEmbedReply(channelID string, embed *discordgo.MessageEmbed, reference *discordgo.MessageReference, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, embed)
	r.refs = append(r.refs, reference)
	return &discordgo.Message{ChannelID: channelID}, nil
}

type recordingSender struct {
	sent chan *discordgo.MessageEmbed
}

func (s *recordingSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	s.sent <- embed
	return &discordgo.Message{ChannelID: channelID}, nil
}

type fakeGateway struct {
	openErr error
	opened  bool
	closed  bool
}

func (g *fakeGateway) Open() error {
	g.opened = true
	return g.openErr
}

func (g *fakeGateway) Close() error {
	g.closed = true
	return nil
}

func newMessage(content string) *discordgo.Message {
	return &discordgo.Message{
		ID:        "1001",
		ChannelID: "2002",
		GuildID:   "3003",
		Content:   content,
		Author:    &discordgo.User{ID: "123456", Username: "gambler"},
	}
}

func TestBot_DispatchCoinFlip(t *testing.T) {
	ledger := new(service.MockLedgerService)
	ledger.On("PlayCoin", mock.Anything, int64(123456), "front", int64(500)).Return(&models.GameResult{
		Game:       models.GameTypeCoin,
		Correct:    true,
		Guess:      models.CoinFront,
		Outcome:    models.CoinFront,
		Stake:      500,
		Multiplier: 1.5,
		Winnings:   750,
		Balance:    1750,
	}, nil)

	b := newBot(Config{Prefix: "!"}, nil, ledger)
	responder := &recordingResponder{}

	b.dispatch(context.Background(), responder, newMessage("!도박.동전 front 500"))

	require.Len(t, responder.replies, 1)
	assert.Contains(t, responder.replies[0].Title, "guessed right")
	assert.Equal(t, "1001", responder.refs[0].MessageID)
	ledger.AssertExpectations(t)
}

func TestBot_DispatchMissingStakeIsZero(t *testing.T) {
	ledger := new(service.MockLedgerService)
	ledger.On("PlayDice", mock.Anything, int64(123456), "4", int64(0)).
		Return(nil, &service.ValidationError{Reason: "stake must be at least 100"})

	b := newBot(Config{Prefix: "!"}, nil, ledger)
	responder := &recordingResponder{}

	b.dispatch(context.Background(), responder, newMessage("!dice-roll 4"))

	require.Len(t, responder.replies, 1)
	assert.Equal(t, "❗ Error", responder.replies[0].Title)
	ledger.AssertExpectations(t)
}

func TestBot_DispatchIgnoresUnknownInput(t *testing.T) {
	ledger := new(service.MockLedgerService)
	b := newBot(Config{Prefix: "!"}, nil, ledger)
	responder := &recordingResponder{}

	b.dispatch(context.Background(), responder, newMessage("hello there"))
	b.dispatch(context.Background(), responder, newMessage("!unknown"))

	assert.Empty(t, responder.replies)
	ledger.AssertNotCalled(t, "PlayCoin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBot_DispatchRejectsNonNumericAuthor(t *testing.T) {
	ledger := new(service.MockLedgerService)
	b := newBot(Config{Prefix: "!"}, nil, ledger)
	responder := &recordingResponder{}

	msg := newMessage("!balance")
	msg.Author.ID = "webhook"
	b.dispatch(context.Background(), responder, msg)

	assert.Empty(t, responder.replies)
}

func TestBot_DispatchRankings(t *testing.T) {
	ledger := new(service.MockLedgerService)
	ledger.On("TopRanking", mock.Anything).Return([]*models.RankingEntry{})
	ledger.On("FullRanking", mock.Anything).Return([]*models.RankingEntry{
		{Rank: 1, DiscordID: 1, Balance: 100},
	})

	b := newBot(Config{Prefix: "!"}, nil, ledger)
	responder := &recordingResponder{}

	b.dispatch(context.Background(), responder, newMessage("!도박.랭킹"))
	b.dispatch(context.Background(), responder, newMessage("!도박.전체랭킹"))

	require.Len(t, responder.replies, 2)
	assert.Equal(t, "No rankings yet.", responder.replies[0].Description)
	assert.Equal(t, "1. <@1>: 100 coins", responder.replies[1].Description)
}

func TestBot_JackpotAnnouncement(t *testing.T) {
	bus := events.NewBus()
	sender := &recordingSender{sent: make(chan *discordgo.MessageEmbed, 1)}

	b := newBot(Config{Prefix: "!", AnnounceChannelID: "4004"}, nil, new(service.MockLedgerService))
	b.subscribeJackpotAnnouncements(bus, sender)

	bus.Emit(context.Background(), events.JackpotWonEvent{UserID: 42, Payout: 500, Jackpot: 4500})

	select {
	case embed := <-sender.sent:
		assert.Contains(t, embed.Description, "<@42>")
		assert.Contains(t, embed.Description, "500 coins")
		assert.Contains(t, embed.Description, "4,500 coins")
	case <-time.After(2 * time.Second):
		t.Fatal("jackpot win was not announced")
	}
}

func TestBot_ConnectFailureLeavesBusUntouched(t *testing.T) {
	bus := events.NewBus()
	sender := &recordingSender{sent: make(chan *discordgo.MessageEmbed, 1)}
	gw := &fakeGateway{openErr: errors.New("websocket: bad handshake")}

	b := newBot(Config{Prefix: "!", AnnounceChannelID: "4004"}, nil, new(service.MockLedgerService))
	err := b.connect(gw, bus, sender)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad handshake")
	assert.True(t, gw.closed)

	bus.Emit(context.Background(), events.JackpotWonEvent{UserID: 42, Payout: 500, Jackpot: 4500})
	select {
	case <-sender.sent:
		t.Fatal("announcement handler subscribed despite failed open")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestBot_ConnectSubscribesAnnouncements(t *testing.T) {
	bus := events.NewBus()
	sender := &recordingSender{sent: make(chan *discordgo.MessageEmbed, 1)}
	gw := &fakeGateway{}

	b := newBot(Config{Prefix: "!", AnnounceChannelID: "4004"}, nil, new(service.MockLedgerService))
	require.NoError(t, b.connect(gw, bus, sender))
	assert.True(t, gw.opened)
	assert.False(t, gw.closed)

	bus.Emit(context.Background(), events.JackpotWonEvent{UserID: 42, Payout: 500, Jackpot: 4500})
	select {
	case embed := <-sender.sent:
		assert.Contains(t, embed.Description, "<@42>")
	case <-time.After(2 * time.Second):
		t.Fatal("jackpot win was not announced")
	}
}
