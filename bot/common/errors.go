package common

import (
	"errors"
	"fmt"

	"economy/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BuildErrorEmbed renders a rejected command. cooldownTitle overrides the title of cooldown replies.
func BuildErrorEmbed(err error, cooldownTitle string) *discordgo.MessageEmbed {
	var validationErr *service.ValidationError
	var cooldownErr *service.CooldownError

	switch {
	case errors.As(err, &validationErr):
		return &discordgo.MessageEmbed{
			Title:       "❗ Error",
			Description: validationErr.Reason,
			Color:       ColorDanger,
		}
	case errors.As(err, &cooldownErr):
		if cooldownTitle == "" {
			cooldownTitle = "⏳ Cooldown"
		}
		return &discordgo.MessageEmbed{
			Title:       cooldownTitle,
			Description: fmt.Sprintf("Try again in %d seconds.", cooldownErr.RemainingSeconds()),
			Color:       ColorDanger,
		}
	default:
		log.WithError(err).Error("Unexpected error in bot command")
		return &discordgo.MessageEmbed{
			Title:       "❌ Error",
			Description: "Something went wrong. Please try again later.",
			Color:       ColorDanger,
		}
	}
}
