// Package leaguetext reads the per-currency league power list copied from the
// game's league page.
package leaguetext

import (
	"regexp"
	"strings"

	"github.com/onemorebsmith/rollercoin-calc/src/hashpower"
	"github.com/onemorebsmith/rollercoin-calc/src/league"
	"github.com/onemorebsmith/rollercoin-calc/src/model"
)

var (
	powerLine   = regexp.MustCompile(`(?i)[\d.,]+\s*[a-z]h/s`)
	powerPrefix = regexp.MustCompile(`(?i)[\d.,]+\s*[a-z]h`)
)

// Parse reads blocks of three lines:
//
//	btc
//	BTC
//	2.844 Zh/s
//
// Blank lines are ignored and lines with spaces that are not powers are
// treated as section headers. Entries whose power fails to parse are dropped.
func Parse(text string) []model.CoinEntry {
	lines := splitLines(text)
	var coins []model.CoinEntry

	for i := 0; i < len(lines); {
		if strings.Contains(lines[i], " ") && !powerLine.MatchString(lines[i]) {
			i++
			continue
		}
		if i+2 >= len(lines) {
			break
		}
		code := strings.ToLower(lines[i])
		display := strings.ToUpper(lines[i+1])
		if !powerPrefix.MatchString(lines[i+2]) {
			i++
			continue
		}
		if power, ok := hashpower.Parse(lines[i+2]); ok {
			coins = append(coins, model.CoinEntry{
				Code:        code,
				DisplayName: display,
				LeaguePower: power,
				IsGameToken: league.IsGameToken(display),
			})
		}
		i += 3
	}
	return coins
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
