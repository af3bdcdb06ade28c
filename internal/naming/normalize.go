package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Placeholder tokens substituted for empty fields.
const (
	PlaceholderTechnology = "TEC"
	PlaceholderProduct    = "PRD"
	PlaceholderScene      = "SCENE"
	PlaceholderPlatform   = "PLATFORM"
	PlaceholderVideoID    = "###.##"
	PlaceholderTimecode   = "######"
	PlaceholderSequence   = "SEQ"
	PlaceholderSong       = "SongName"
	PlaceholderGMM        = "GMM"
	PlaceholderVoice      = "VoiceName"
	PlaceholderCelebrity  = "CelebName"
	PlaceholderTalent     = "TalentName"
	PlaceholderKeywords   = "description"
)

// greenScreenSuffix is appended to the talent token for green-screen shoots.
const greenScreenSuffix = "GS"

// Tokens is the normalized form of a FieldSet. Every member is non-empty.
type Tokens struct {
	YearMonth string // YYYY.MM
	FullDate  string // MM.DD.YY

	IHPNumber   string // 3 digits.
	MicNumber   string // 3 digits.
	SceneNumber string // 2 digits.
	VideoID     string
	Timecode    string

	Technology string
	Product    string
	Scene      string
	Platform   string

	Talent    string // GS-suffixed when GreenScreen is set.
	Celebrity string
	Keywords  string
	Song      string
	GMM       string
	Voice     string
	Sequence  string
}

// Normalize derives the token record for f. It reads f and never modifies it.
func Normalize(f FieldSet) Tokens {
	t := Tokens{
		YearMonth:   FormatYearMonth(f.Date),
		FullDate:    FormatFullDate(f.Date),
		IHPNumber:   PadNumeric(f.IHPNumber, 3),
		MicNumber:   PadNumeric(f.MicNumber, 3),
		SceneNumber: PadNumeric(f.SceneNumber, 2),
		VideoID:     orPlaceholder(f.VideoID, PlaceholderVideoID),
		Timecode:    orPlaceholder(f.Timecode, PlaceholderTimecode),
		Technology:  orPlaceholder(f.Technology, PlaceholderTechnology),
		Product:     orPlaceholder(f.Product, PlaceholderProduct),
		Scene:       orPlaceholder(f.Scene, PlaceholderScene),
		Platform:    FormatPlatform(f.Platform),
		Talent:      FormatPersonName(f.TalentName),
		Celebrity:   formatCelebrity(f.CelebrityName),
		Keywords:    FormatKeywordSlug(f.Keywords),
		Song:        StripSpaces(f.SongName, PlaceholderSong),
		GMM:         StripSpaces(f.GMMName, PlaceholderGMM),
		Voice:       StripSpaces(f.VoiceName, PlaceholderVoice),
		Sequence:    orPlaceholder(f.SequenceLabel, PlaceholderSequence),
	}
	if f.GreenScreen {
		t.Talent += greenScreenSuffix
	}
	return t
}

var reNonDigit = regexp.MustCompile(`[^0-9]`)

// PadNumeric strips everything but ASCII digits and left-pads the result
// with zeros to width. Empty input yields width zeros. Input already longer
// than width is returned unpadded and untruncated.
func PadNumeric(text string, width int) string {
	digits := reNonDigit.ReplaceAllString(text, "")
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// FormatPersonName turns "jane doe" into "JaneDoe": whitespace-separated
// parts get an upper-cased first letter and are joined without separator.
// The rest of each part keeps its case.
func FormatPersonName(text string) string {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return PlaceholderTalent
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

// formatCelebrity is FormatPersonName with its own placeholder.
func formatCelebrity(text string) string {
	if isBlank(text) {
		return PlaceholderCelebrity
	}
	return FormatPersonName(text)
}

// FormatKeywordSlug lower-cases text and joins its words with '-'.
func FormatKeywordSlug(text string) string {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return PlaceholderKeywords
	}
	return strings.Join(words, "-")
}

// FormatYearMonth renders t as YYYY.MM.
func FormatYearMonth(t time.Time) string {
	return fmt.Sprintf("%04d.%02d", t.Year(), int(t.Month()))
}

// FormatFullDate renders t as MM.DD.YY.
func FormatFullDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// FormatPlatform upper-cases a platform name and removes all whitespace:
// "Shutter stock" becomes "SHUTTERSTOCK".
func FormatPlatform(text string) string {
	return StripSpaces(strings.ToUpper(text), PlaceholderPlatform)
}

// StripSpaces removes every whitespace rune from text, or returns
// placeholder when nothing is left.
func StripSpaces(text, placeholder string) string {
	s := strings.Join(strings.Fields(text), "")
	if s == "" {
		return placeholder
	}
	return s
}

func orPlaceholder(text, placeholder string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return placeholder
	}
	return s
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

func upperFirst(s string) string {
	first := true
	return strings.Map(func(r rune) rune {
		if first {
			first = false
			return unicode.ToUpper(r)
		}
		return r
	}, s)
}
