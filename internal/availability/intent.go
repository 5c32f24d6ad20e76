package availability

import (
	"fmt"
	"strings"
)

// Mode is the edit an utterance asks for.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeRemove Mode = "remove"
	ModeOnly   Mode = "only"
)

// ParseMode resolves a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAdd, ModeRemove, ModeOnly:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// verb is the phrase used in confirmations.
func (m Mode) verb() string {
	switch m {
	case ModeRemove:
		return "remove"
	case ModeOnly:
		return "only include"
	}
	return "add"
}

// modeRule is one entry of the mode rule list.
type modeRule struct {
	name  string
	mode  Mode
	match func(words []string) bool
}

// modeRules are evaluated in order and every matching rule overwrites the
// mode, so a removal trigger beats "only" when both appear.
var modeRules = []modeRule{
	{name: "only", mode: ModeOnly, match: hasWord("only")},
	{name: "negated work", mode: ModeRemove, match: negatedWork},
	{name: "removal word", mode: ModeRemove, match: hasWord("remove", "clear", "unavailable", "off", "except")},
	{name: "not available", mode: ModeRemove, match: hasPhrase("not", "available")},
}

// detectMode classifies tokens into a mode. explicit is false only when no
// rule matched and the mode fell back to add.
func detectMode(tokens []Token) (mode Mode, explicit bool) {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}

	mode = ModeAdd
	for _, rule := range modeRules {
		if rule.match(words) {
			mode, explicit = rule.mode, true
		}
	}
	return mode, explicit
}

func hasWord(want ...string) func([]string) bool {
	return func(words []string) bool {
		for _, w := range words {
			for _, candidate := range want {
				if w == candidate {
					return true
				}
			}
		}
		return false
	}
}

func hasPhrase(phrase ...string) func([]string) bool {
	return func(words []string) bool {
		for i := 0; i+len(phrase) <= len(words); i++ {
			if equalWords(words[i:i+len(phrase)], phrase) {
				return true
			}
		}
		return false
	}
}

func equalWords(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var negators = map[string]bool{
	"can't":   true,
	"cant":    true,
	"cannot":  true,
	"won't":   true,
	"not":     true,
	"anymore": true,
}

// workWindow is how many words may sit between a negation and "work":
// "can't really work", "not able to work".
const workWindow = 3

// negatedWork matches a negation followed closely by "work": "can't work",
// "no longer work", "not able to work".
func negatedWork(words []string) bool {
	for i, w := range words {
		negated := negators[w] || (w == "longer" && i > 0 && words[i-1] == "no")
		if !negated {
			continue
		}
		for j := i + 1; j < len(words) && j <= i+workWindow; j++ {
			if words[j] == "work" || words[j] == "working" {
				return true
			}
		}
	}
	return false
}
