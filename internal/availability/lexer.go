package availability

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

// TokenKind represents the type of token.
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenDay
	TokenConnective
	TokenTime
	TokenNumber
	TokenPunct
)

var tokenKindNames = [...]string{"WORD", "DAY", "CONNECTIVE", "TIME", "NUMBER", "PUNCT"}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Span is a byte range in the normalized input.
type Span struct {
	Start int
	End   int
}

// Token represents a lexed token.
type Token struct {
	Kind TokenKind
	Span Span
	Text string // lower-cased source text

	// TokenDay
	Days       []schedule.Day
	Collective bool

	// TokenTime
	Hour     int
	Minute   int
	Meridiem string // "am", "pm" or "" when not stated
	Named    bool   // spelled as a word: noon, midnight
}

// lexer is the internal lexer state.
type lexer struct {
	input string
	pos   int
}

var apostrophes = strings.NewReplacer("’", "'", "‘", "'")

// Tokenize lower-cases text and splits it into tokens in a single pass.
// It never fails: anything it does not recognize becomes a WORD, NUMBER or
// PUNCT token.
func Tokenize(text string) []Token {
	l := &lexer{input: apostrophes.Replace(strings.ToLower(text))}
	return l.tokenize()
}

func (l *lexer) tokenize() []Token {
	var tokens []Token
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}

		start := l.pos
		ch := l.input[l.pos]

		switch {
		case isDigit(ch):
			tokens = append(tokens, l.lexNumberOrTime())
		case isAlpha(ch):
			tokens = append(tokens, l.lexWord())
		case ch == '-':
			l.pos++
			tokens = append(tokens, Token{Kind: TokenConnective, Span: Span{start, l.pos}, Text: "-"})
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.pos += size
			kind := TokenPunct
			if r == '–' || r == '—' {
				kind = TokenConnective
			}
			tokens = append(tokens, Token{Kind: kind, Span: Span{start, l.pos}, Text: l.input[start:l.pos]})
		}
	}
	return tokens
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && isWhitespace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *lexer) lexNumberOrTime() Token {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	digits := l.input[start:l.pos]

	// Minutes: ":30" or ".30", exactly two digits.
	minute := 0
	if len(digits) <= 2 && l.pos+2 < len(l.input) &&
		(l.input[l.pos] == ':' || l.input[l.pos] == '.') &&
		isDigit(l.input[l.pos+1]) && isDigit(l.input[l.pos+2]) &&
		(l.pos+3 == len(l.input) || !isDigit(l.input[l.pos+3])) {
		minute, _ = strconv.Atoi(l.input[l.pos+1 : l.pos+3])
		l.pos += 3
	}

	meridiem := l.scanMeridiem()

	// A number glued to other letters ("2nd", "3x") is not a time.
	if meridiem == "" && l.pos < len(l.input) && isAlpha(l.input[l.pos]) {
		for l.pos < len(l.input) && isAlphanumeric(l.input[l.pos]) {
			l.pos++
		}
		return Token{Kind: TokenNumber, Span: Span{start, l.pos}, Text: l.input[start:l.pos]}
	}

	hour, _ := strconv.Atoi(digits)
	tok := Token{
		Kind:     TokenTime,
		Span:     Span{start, l.pos},
		Text:     l.input[start:l.pos],
		Hour:     hour,
		Minute:   minute,
		Meridiem: meridiem,
	}
	if len(digits) > 2 || !validClock(hour, minute, meridiem) {
		tok.Kind = TokenNumber
	}
	return tok
}

// meridiems in match order. The one-letter forms only count when glued to
// the number ("9a"), so "5 a week" stays a number followed by a word.
var meridiems = []struct {
	text  string
	value string
	glued bool
}{
	{"a.m.", "am", false},
	{"p.m.", "pm", false},
	{"a.m", "am", false},
	{"p.m", "pm", false},
	{"am", "am", false},
	{"pm", "pm", false},
	{"a", "am", true},
	{"p", "pm", true},
}

func (l *lexer) scanMeridiem() string {
	pos := l.pos
	for pos < len(l.input) && (l.input[pos] == ' ' || l.input[pos] == '\t') {
		pos++
	}
	rest := l.input[pos:]
	for _, m := range meridiems {
		if m.glued && pos != l.pos {
			continue
		}
		if !strings.HasPrefix(rest, m.text) {
			continue
		}
		after := rest[len(m.text):]
		if after != "" && isAlphanumeric(after[0]) {
			continue
		}
		l.pos = pos + len(m.text)
		return m.value
	}
	return ""
}

func validClock(hour, minute int, meridiem string) bool {
	if minute > 59 {
		return false
	}
	if meridiem != "" {
		return hour >= 1 && hour <= 12
	}
	return hour <= 23 || (hour == 24 && minute == 0)
}

func (l *lexer) lexWord() Token {
	start := l.pos
	l.scanWord()
	word := l.input[start:l.pos]
	span := Span{start, l.pos}

	if word == "every" {
		if end, ok := l.peekWord("day"); ok {
			l.pos = end
			return Token{Kind: TokenDay, Span: Span{start, end}, Text: l.input[start:end], Days: schedule.AllDays(), Collective: true}
		}
	}

	if tok, ok := keywordMap[word]; ok {
		tok.Span = span
		tok.Text = word
		if tok.Days != nil {
			tok.Days = append([]schedule.Day(nil), tok.Days...)
		}
		return tok
	}

	if d, ok := schedule.ParseDay(word); ok {
		return Token{Kind: TokenDay, Span: span, Text: word, Days: []schedule.Day{d}}
	}

	return Token{Kind: TokenWord, Span: span, Text: word}
}

// scanWord consumes letters, digits and inner apostrophes ("can't").
func (l *lexer) scanWord() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if isAlphanumeric(ch) {
			l.pos++
			continue
		}
		if ch == '\'' && l.pos+1 < len(l.input) && isAlpha(l.input[l.pos+1]) {
			l.pos++
			continue
		}
		break
	}
}

// peekWord reports whether the next word is want, and where it ends.
func (l *lexer) peekWord(want string) (int, bool) {
	pos := l.pos
	for pos < len(l.input) && isWhitespace(l.input[pos]) {
		pos++
	}
	end := pos
	for end < len(l.input) && isAlpha(l.input[end]) {
		end++
	}
	if end == pos || l.input[pos:end] != want {
		return 0, false
	}
	if end < len(l.input) && isDigit(l.input[end]) {
		return 0, false
	}
	return end, true
}

// keywordMap maps lowercase keywords to tokens. Single day names are
// resolved by schedule.ParseDay instead.
var keywordMap = map[string]Token{
	"weekday":  {Kind: TokenDay, Days: schedule.Weekdays(), Collective: true},
	"weekdays": {Kind: TokenDay, Days: schedule.Weekdays(), Collective: true},
	"weekend":  {Kind: TokenDay, Days: schedule.WeekendDays(), Collective: true},
	"weekends": {Kind: TokenDay, Days: schedule.WeekendDays(), Collective: true},
	"everyday": {Kind: TokenDay, Days: schedule.AllDays(), Collective: true},
	"daily":    {Kind: TokenDay, Days: schedule.AllDays(), Collective: true},
	// Connectives
	"to":      {Kind: TokenConnective},
	"through": {Kind: TokenConnective},
	"thru":    {Kind: TokenConnective},
	// Named times
	"noon":     {Kind: TokenTime, Hour: 12, Meridiem: "pm", Named: true},
	"midday":   {Kind: TokenTime, Hour: 12, Meridiem: "pm", Named: true},
	"midnight": {Kind: TokenTime, Hour: 12, Meridiem: "am", Named: true},
}

// Helper functions

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func isAlphanumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
