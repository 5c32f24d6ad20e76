// Package availability turns free-form sentences about working days and
// hours into edits of a weekly schedule.Calendar.
//
// Parse reads one utterance into an Outcome; Apply combines an Outcome with a
// calendar snapshot and returns the new calendar plus a Report. Neither
// function keeps state or performs I/O.
package availability

import "github.com/aaronsmc/office-wishlist-agent/internal/schedule"

// DefaultAttachWindow is how many bytes after a day mention a time range may
// start and still belong to that day.
const DefaultAttachWindow = 24

// DayRange is a time range bound to one day. Range is not validated: it can
// be malformed (start >= end) when the text was.
type DayRange struct {
	Day   schedule.Day       `json:"day"`
	Range schedule.TimeRange `json:"range"`
}

// Outcome is the result of parsing one utterance.
type Outcome struct {
	Matched    bool            `json:"matched"`
	Days       []schedule.Day  `json:"days"`
	TimeRanges []DayRange      `json:"time_ranges"`
	Slots      []schedule.Slot `json:"slots,omitempty"`
	// Unscoped holds a time range stated without any day ("9-5 works").
	// Apply uses it for every day that already holds availability.
	Unscoped *schedule.TimeRange `json:"unscoped,omitempty"`
	Mode     Mode                `json:"mode"`
	Explicit bool                `json:"explicit"`
	Message  string              `json:"message"`
}

// Parser extracts Outcomes from text. The zero value uses DefaultAttachWindow.
type Parser struct {
	AttachWindow int
}

// Parse parses text with the default Parser.
func Parse(text string) Outcome {
	return Parser{}.Parse(text)
}

// Parse reads one utterance. It never fails; an utterance with nothing
// actionable yields Matched == false.
func (p Parser) Parse(text string) Outcome {
	window := p.AttachWindow
	if window <= 0 {
		window = DefaultAttachWindow
	}

	tokens := Tokenize(text)
	mode, explicit := detectMode(tokens)
	mentions := scanDays(tokens)
	groups := groupDays(tokens, mentions)
	times := scanTimes(tokens)

	out := Outcome{Mode: mode, Explicit: explicit}
	for _, m := range mentions {
		out.Days = append(out.Days, m.days...)
	}
	out.Days = schedule.SortDays(out.Days)

	attached := make(map[schedule.Day][]schedule.TimeRange)
	for _, tm := range times {
		g, ok := attachTo(groups, tm, window)
		if !ok {
			continue
		}
		for _, d := range g.days {
			attached[d] = append(attached[d], tm.r)
		}
	}

	for _, d := range out.Days {
		switch {
		case len(attached[d]) > 0:
			out.TimeRanges = append(out.TimeRanges, DayRange{Day: d, Range: envelope(attached[d])})
		case len(times) > 0:
			out.TimeRanges = append(out.TimeRanges, DayRange{Day: d, Range: times[0].r})
		}
	}
	if len(out.Days) == 0 && len(times) > 0 {
		r := times[0].r
		out.Unscoped = &r
	}

	if len(out.TimeRanges) == 0 && out.Unscoped == nil {
		out.Slots = detectSlots(tokens)
		if len(out.Days) > 0 && len(out.Slots) == 0 && mode != ModeRemove {
			out.Slots = []schedule.Slot{schedule.SlotMorning, schedule.SlotAfternoon}
		}
	}

	out.Matched = len(out.TimeRanges) > 0 || out.Unscoped != nil ||
		(len(out.Days) > 0 && (len(out.Slots) > 0 || mode == ModeRemove))
	if out.Matched {
		out.Message = composeOutcome(out)
	}
	return out
}

// dayMention is one day, collective or day range found in the text.
type dayMention struct {
	days  []schedule.Day
	span  Span
	first int // token index
	last  int // token index
}

// scanDays finds day mentions. DAY CONNECTIVE DAY between two single days is
// a range ("mon-fri", "saturday to tuesday") and wraps past Sunday.
func scanDays(tokens []Token) []dayMention {
	var mentions []dayMention
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Kind != TokenDay {
			continue
		}
		if !tok.Collective && i+2 < len(tokens) &&
			tokens[i+1].Kind == TokenConnective &&
			tokens[i+2].Kind == TokenDay && !tokens[i+2].Collective {
			end := tokens[i+2]
			mentions = append(mentions, dayMention{
				days:  schedule.DayRange(tok.Days[0], end.Days[0]),
				span:  Span{tok.Span.Start, end.Span.End},
				first: i,
				last:  i + 2,
			})
			i += 2
			continue
		}
		mentions = append(mentions, dayMention{
			days:  append([]schedule.Day(nil), tok.Days...),
			span:  tok.Span,
			first: i,
			last:  i,
		})
	}
	return mentions
}

// dayGroup is a run of day mentions joined only by list words.
type dayGroup struct {
	days []schedule.Day
	end  int // byte offset after the last mention
}

var listWords = map[string]bool{
	",":    true,
	"&":    true,
	"/":    true,
	"and":  true,
	"or":   true,
	"plus": true,
}

// groupDays joins "Monday, Wednesday and Friday" into one group so a time
// range after the last day applies to all three.
func groupDays(tokens []Token, mentions []dayMention) []dayGroup {
	var groups []dayGroup
	for i, m := range mentions {
		if i > 0 && onlyListWords(tokens[mentions[i-1].last+1:m.first]) {
			g := &groups[len(groups)-1]
			g.days = append(g.days, m.days...)
			g.end = m.span.End
			continue
		}
		groups = append(groups, dayGroup{days: append([]schedule.Day(nil), m.days...), end: m.span.End})
	}
	return groups
}

func onlyListWords(tokens []Token) bool {
	for _, tok := range tokens {
		if (tok.Kind != TokenPunct && tok.Kind != TokenWord) || !listWords[tok.Text] {
			return false
		}
	}
	return true
}

// timeMention is one time range found in the text.
type timeMention struct {
	r    schedule.TimeRange
	span Span
}

// scanTimes finds "TIME CONNECTIVE TIME" and "between TIME and TIME".
func scanTimes(tokens []Token) []timeMention {
	var mentions []timeMention
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].Kind != TokenTime || tokens[i+2].Kind != TokenTime {
			continue
		}
		joined := tokens[i+1].Kind == TokenConnective ||
			(tokens[i+1].Text == "and" && i > 0 && tokens[i-1].Text == "between")
		if !joined {
			continue
		}
		mentions = append(mentions, timeMention{
			r:    resolveRange(tokens[i], tokens[i+2]),
			span: Span{tokens[i].Span.Start, tokens[i+2].Span.End},
		})
		i += 2
	}
	return mentions
}

// attachTo returns the nearest group ending before tm within window bytes.
func attachTo(groups []dayGroup, tm timeMention, window int) (dayGroup, bool) {
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g.end > tm.span.Start {
			continue
		}
		return g, tm.span.Start-g.end <= window
	}
	return dayGroup{}, false
}

var slotWords = map[string]schedule.Slot{
	"morning":    schedule.SlotMorning,
	"mornings":   schedule.SlotMorning,
	"am":         schedule.SlotMorning,
	"afternoon":  schedule.SlotAfternoon,
	"afternoons": schedule.SlotAfternoon,
	"mid":        schedule.SlotAfternoon,
	"midday":     schedule.SlotAfternoon,
	"noon":       schedule.SlotAfternoon,
	"evening":    schedule.SlotEvening,
	"evenings":   schedule.SlotEvening,
	"night":      schedule.SlotEvening,
	"nights":     schedule.SlotEvening,
	"tonight":    schedule.SlotEvening,
	"pm":         schedule.SlotEvening,
}

// detectSlots collects coarse time-of-day words in day order. It is only
// called when no time range was found, so "noon" here is never part of one.
// "am" after "i" is the verb.
func detectSlots(tokens []Token) []schedule.Slot {
	found := make(map[schedule.Slot]bool)
	for i, tok := range tokens {
		if tok.Kind != TokenWord && !(tok.Kind == TokenTime && tok.Named) {
			continue
		}
		slot, ok := slotWords[tok.Text]
		if !ok {
			continue
		}
		if tok.Text == "am" && i > 0 && tokens[i-1].Text == "i" {
			continue
		}
		found[slot] = true
	}

	var slots []schedule.Slot
	for _, s := range schedule.AllSlots() {
		if found[s] {
			slots = append(slots, s)
		}
	}
	return slots
}
