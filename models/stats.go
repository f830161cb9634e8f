package models

// RankingEntry represents a user's entry in the balance ranking
type RankingEntry struct {
	Rank      int
	DiscordID int64
	Balance   int64
}
