package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBalance formats an amount with thousand separators
func FormatBalance(balance int64) string {
	str := strconv.FormatInt(balance, 10)

	sign := ""
	if strings.HasPrefix(str, "-") {
		sign, str = "-", str[1:]
	}

	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var result strings.Builder
	result.WriteString(sign)
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}

// FormatCoins formats an amount followed by the currency unit
func FormatCoins(amount int64) string {
	return FormatBalance(amount) + " coins"
}

// FormatDelta formats a balance change with an explicit plus sign for gains
func FormatDelta(delta int64) string {
	if delta > 0 {
		return "+" + FormatBalance(delta)
	}
	return FormatBalance(delta)
}

// FormatMultiplier renders the shown multiplier of a game: winnings over stake
// rounded to two places, or -1 for a loss
func FormatMultiplier(stake, winnings int64) string {
	if winnings <= 0 || stake <= 0 {
		return "-1"
	}
	rounded := fmt.Sprintf("%.2f", float64(winnings)/float64(stake))
	return strings.TrimRight(strings.TrimRight(rounded, "0"), ".")
}

// MentionUser returns the Discord mention of a user ID
func MentionUser(discordID int64) string {
	return fmt.Sprintf("<@%d>", discordID)
}
