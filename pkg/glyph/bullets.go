package glyph

import "fmt"

type Glyph struct {
	Key       string
	Symbol    string
	Meaning   string
	Signifier bool
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Key:     "o",
		Symbol:  "○",
		Meaning: "event",
	}, Glyph{
		Key:     "-",
		Symbol:  "●",
		Meaning: "reminder",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "reminder completed",
	}, Glyph{
		Key:     "",
		Symbol:  "",
		Meaning: "any",
	}, Glyph{
		Key:       "*",
		Symbol:    "✷",
		Meaning:   "high priority",
		Signifier: true,
	}, Glyph{
		Key:       "@",
		Symbol:    "◷",
		Meaning:   "has alarm",
		Signifier: true,
	}, Glyph{
		Key:       "~",
		Symbol:    "↻",
		Meaning:   "repeats",
		Signifier: true,
	}, Glyph{
		Key:       " ",
		Symbol:    " ",
		Meaning:   "none",
		Signifier: true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int
type Signifier int

const (
	Event Bullet = iota
	Reminder
	Completed
	Any
	Priority Signifier = iota
	Alarm
	Repeat
	None
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

func (s Signifier) Glyph() Glyph {
	return DefaultGlyphs()[s]
}

func (s Signifier) String() string {
	return s.Glyph().String()
}
