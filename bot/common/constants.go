package common

// Discord color constants
const (
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorGold    = 0xF1C40F
	ColorInfo    = 0x3498DB // Blue
)

// MaxDescriptionLength is Discord's limit for an embed description
const MaxDescriptionLength = 4096
