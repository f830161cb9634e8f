package bot

import (
	"strings"
)

// Command names
const (
	CommandCoinFlip    = "coin-flip"
	CommandDiceRoll    = "dice-roll"
	CommandJackpotPlay = "jackpot-play"
	CommandWork        = "work"
	CommandBalance     = "balance"
	CommandTopRanking  = "top-ranking"
	CommandFullRanking = "full-ranking"
)

// commandAliases lists the alternative names of each command
var commandAliases = map[string][]string{
	CommandCoinFlip:    {"도박.동전"},
	CommandDiceRoll:    {"도박.주사위"},
	CommandJackpotPlay: {"도박.잭팟"},
	CommandWork:        {"도박.노동", "도박.일", "도박.돈"},
	CommandBalance:     {"도박.지갑", "도박.잔액", "도박.직바"},
	CommandTopRanking:  {"도박.랭킹"},
	CommandFullRanking: {"도박.전체랭킹"},
}

// commandNames maps every accepted name to its canonical command
var commandNames = buildCommandNames()

func buildCommandNames() map[string]string {
	names := make(map[string]string)
	for command, aliases := range commandAliases {
		names[command] = command
		for _, alias := range aliases {
			names[alias] = command
		}
	}
	return names
}

// ParseCommand splits a message into its canonical command and arguments.
// ok is false when the message is not a known prefixed command.
func ParseCommand(prefix, content string) (command string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}

	command, ok = commandNames[strings.ToLower(fields[0])]
	if !ok {
		return "", nil, false
	}
	return command, fields[1:], true
}
