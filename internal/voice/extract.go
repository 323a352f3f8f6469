// Package voice holds the best-effort extraction heuristics for the voice
// assistant webhook. Everything here is advisory: the extracted values feed
// structured service calls and never relax the engine's bid rules.
package voice

import (
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// itemKeywords are scanned first; a match beats the phrase heuristic below.
var itemKeywords = []string{"painting", "watch", "book", "guitar", "ring", "vase", "vintage", "antique", "collection"}

var itemPhrasePattern = regexp.MustCompile(`(?i)(?:on|for)\s+(?:the\s+)?([^,.!?]+)`)

// ExtractAmount pulls a dollar amount out of free text, tolerating thousands
// separators ("$1,250.00").
func ExtractAmount(text string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ExtractItem guesses which item the user is talking about: a known keyword
// if one appears, otherwise the phrase following "on" or "for".
func ExtractItem(text string) (string, bool) {
	words := strings.Fields(strings.ToLower(text))
	for _, keyword := range itemKeywords {
		for _, w := range words {
			if w == keyword {
				return keyword, true
			}
		}
	}

	if m := itemPhrasePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
