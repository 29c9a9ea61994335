// Package annotate lays out figure titles and footnotes.
//
// Layout is pure: Titles and Notes return the text items to draw in
// figure-fractional coordinates, (0,0) bottom-left and (1,1) top-right.
// Values outside [0,1] are legal and place text beyond the plot canvas.
package annotate

import (
	"strings"
	"unicode/utf8"

	"github.com/renato0307/brookplot/internal/colors"
	"github.com/renato0307/brookplot/internal/palette"
)

// Weight is the font weight of a text item
type Weight string

const (
	Regular Weight = "regular"
	Bold    Weight = "bold"
	Light   Weight = "light"
)

// Anchor is the vertical alignment of a text item relative to its Y
type Anchor string

const (
	Baseline Anchor = "baseline"
	Top      Anchor = "top"
)

// Role tells which annotation produced a text item
type Role string

const (
	RoleSubtitle  Role = "subtitle"
	RoleTitle     Role = "title"
	RoleTag       Role = "tag"
	RoleNoteLabel Role = "note-label"
	RoleNote      Role = "note"
)

const (
	// originX is the left edge of every annotation before HPad
	originX = 0.05
	// titleOriginY is where the first title line goes before VPad
	titleOriginY = 0.95
	// basePad is the line spacing factor per point of font size
	basePad = 0.0038

	titleScale = 1.2
	tagScale   = 0.8
	noteScale  = 0.8
	// noteGap separates consecutive notes
	noteGap = 0.01
)

var (
	// NoteColor is the gray used for footnotes
	NoteColor = colors.MustParseHex("#666666")
	// TitleColor is the brand blue used for titles and tags
	TitleColor = colors.MustParseHex(palette.BrandBlueHex)
)

// Text is one piece of text to draw on a figure
type Text struct {
	Role   Role
	X, Y   float64
	Body   string
	Size   float64
	Weight Weight
	Color  colors.Color
	Anchor Anchor
}

// Lines returns the number of newline separated segments of the body
func (t Text) Lines() int {
	return lineCount(t.Body)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// Padding holds the caller adjustments shared by titles and notes.
// VPad and HPad are percentages of the figure; TextPad is in units of
// 1/10000 added to the line spacing factor.
type Padding struct {
	VPad    float64
	HPad    float64
	TextPad float64
}

func (p Padding) x() float64 {
	return originX - p.HPad/100
}

func (p Padding) linePad() float64 {
	return basePad + p.TextPad/10000
}

// TitleOptions are the inputs of Titles. Empty strings are skipped.
type TitleOptions struct {
	Title    string
	Subtitle string
	Tag      string
	Padding
}

// Titles places the subtitle, title and tag, in that order, starting near
// the top of the figure. Each item moves the next one down by
// fontSize × lines × pad × weight.
func Titles(fontSize float64, opts TitleOptions) []Text {
	x := opts.x()
	y := titleOriginY + opts.VPad/100
	pad := opts.linePad()

	steps := []struct {
		role   Role
		body   string
		size   float64
		weight Weight
		color  colors.Color
		factor float64
	}{
		{RoleSubtitle, opts.Subtitle, fontSize, Regular, colors.Black, 1},
		{RoleTitle, opts.Title, titleScale * fontSize, Bold, TitleColor, titleScale},
		{RoleTag, opts.Tag, tagScale * fontSize, Light, TitleColor, 1},
	}

	var out []Text
	for _, s := range steps {
		if s.body == "" {
			continue
		}
		out = append(out, Text{
			Role:   s.role,
			X:      x,
			Y:      y,
			Body:   s.body,
			Size:   s.size,
			Weight: s.weight,
			Color:  s.color,
			Anchor: Baseline,
		})
		y -= fontSize * float64(lineCount(s.body)) * pad * s.factor
	}
	return out
}

// NotesOptions are the inputs of Notes
type NotesOptions struct {
	Padding
}

// SplitLabel splits a note at its first colon. The label keeps the colon;
// the remainder keeps any later colons. Notes without a colon have no label.
func SplitLabel(note string) (label, rest string) {
	i := strings.IndexByte(note, ':')
	if i < 0 {
		return "", note
	}
	return note[:i+1], note[i+1:]
}

// Notes places footnotes below the plot, starting at the bottom edge of the
// figure and stacking downward. A leading "Label:" is drawn bold and the rest
// of the note is indented to follow it.
func Notes(fontSize float64, opts NotesOptions, notes ...string) []Text {
	x := opts.x()
	y := 0 - opts.VPad/100
	pad := opts.linePad()
	size := noteScale * fontSize

	var out []Text
	for _, note := range notes {
		if note == "" {
			continue
		}
		label, rest := SplitLabel(note)
		if label != "" {
			out = append(out, Text{
				Role:   RoleNoteLabel,
				X:      x,
				Y:      y,
				Body:   label,
				Size:   size,
				Weight: Bold,
				Color:  NoteColor,
				Anchor: Top,
			})
		}
		out = append(out, Text{
			Role:   RoleNote,
			X:      x,
			Y:      y,
			Body:   indent(rest, 2*utf8.RuneCountInString(label)),
			Size:   size,
			Weight: Regular,
			Color:  NoteColor,
			Anchor: Top,
		})
		y -= fontSize*pad*(0.9*float64(lineCount(rest)))*noteScale + noteGap
	}
	return out
}

func indent(s string, n int) string {
	return strings.Repeat(" ", n) + s
}

// SourceNote formats a data source footnote
func SourceNote(text string) string {
	if text == "" {
		return ""
	}
	return "Source: " + text
}

// NotesNote formats a general footnote
func NotesNote(text string) string {
	if text == "" {
		return ""
	}
	return "Note: " + text
}

// Bounds returns the lowest and highest Y of the given items
func Bounds(items []Text) (minY, maxY float64) {
	if len(items) == 0 {
		return 0, 0
	}
	minY, maxY = items[0].Y, items[0].Y
	for _, t := range items[1:] {
		minY = min(minY, t.Y)
		maxY = max(maxY, t.Y)
	}
	return minY, maxY
}
