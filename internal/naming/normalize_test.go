package naming

import (
	"testing"
	"time"
)

func TestPadNumeric(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 3, "000"},
		{"single digit", "7", 3, "007"},
		{"letters stripped", "abc12", 2, "12"},
		{"no digits", "abc", 2, "00"},
		{"mixed separators", "#0-4", 3, "004"},
		{"exact width", "123", 3, "123"},
		{"overflow passes through", "1234", 3, "1234"},
		{"whitespace only", "   ", 2, "00"},
		{"zero width", "", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PadNumeric(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("PadNumeric(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadNumeric_Idempotent(t *testing.T) {
	inputs := []string{"", "7", "abc12", "0007", "12345", "v1.2", "  9 "}
	for _, in := range inputs {
		for width := 0; width <= 5; width++ {
			once := PadNumeric(in, width)
			twice := PadNumeric(once, width)
			if once != twice {
				t.Errorf("PadNumeric not idempotent for (%q, %d): %q then %q", in, width, once, twice)
			}
		}
	}
}

func TestFormatPersonName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "TalentName"},
		{"whitespace only", "   ", "TalentName"},
		{"two parts", "jane doe", "JaneDoe"},
		{"extra whitespace", "  jane   mary\tdoe ", "JaneMaryDoe"},
		{"rest of word keeps case", "o'neil mcDonald", "O'neilMcDonald"},
		{"already compact", "JaneDoe", "JaneDoe"},
		{"non-ascii first letter", "ñandu élan", "ÑanduÉlan"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPersonName(tt.in)
			if got != tt.want {
				t.Errorf("FormatPersonName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatKeywordSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", "description"},
		{"whitespace only", " \t ", "description"},
		{"collapses runs", "  Green Screen  Happy ", "green-screen-happy"},
		{"single word", "Glow", "glow"},
		{"keeps hyphens", "before-after shot", "before-after-shot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatKeywordSlug(tt.in)
			if got != tt.want {
				t.Errorf("FormatKeywordSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDates(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantYM   string
		wantFull string
	}{
		{"march", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), "2024.03", "03.05.24"},
		{"year end", time.Date(2009, time.December, 31, 23, 59, 0, 0, time.UTC), "2009.12", "12.31.09"},
		{"new century", time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC), "2100.01", "01.01.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatYearMonth(tt.date); got != tt.wantYM {
				t.Errorf("FormatYearMonth = %q, want %q", got, tt.wantYM)
			}
			if got := FormatFullDate(tt.date); got != tt.wantFull {
				t.Errorf("FormatFullDate = %q, want %q", got, tt.wantFull)
			}
		})
	}
}

func TestFormatPlatform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "PLATFORM"},
		{"Shutterstock", "SHUTTERSTOCK"},
		{" getty images ", "GETTYIMAGES"},
		{"Eleven\tLabs", "ELEVENLABS"},
	}
	for _, tt := range tests {
		if got := FormatPlatform(tt.in); got != tt.want {
			t.Errorf("FormatPlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Placeholders(t *testing.T) {
	tok := Normalize(FieldSet{})
	checks := map[string][2]string{
		"IHPNumber":   {tok.IHPNumber, "000"},
		"MicNumber":   {tok.MicNumber, "000"},
		"SceneNumber": {tok.SceneNumber, "00"},
		"VideoID":     {tok.VideoID, "###.##"},
		"Timecode":    {tok.Timecode, "######"},
		"Technology":  {tok.Technology, "TEC"},
		"Product":     {tok.Product, "PRD"},
		"Scene":       {tok.Scene, "SCENE"},
		"Platform":    {tok.Platform, "PLATFORM"},
		"Talent":      {tok.Talent, "TalentName"},
		"Celebrity":   {tok.Celebrity, "CelebName"},
		"Keywords":    {tok.Keywords, "description"},
		"Song":        {tok.Song, "SongName"},
		"GMM":         {tok.GMM, "GMM"},
		"Voice":       {tok.Voice, "VoiceName"},
		"Sequence":    {tok.Sequence, "SEQ"},
	}
	for name, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", name, c[0], c[1])
		}
	}
}

func TestNormalize_GreenScreenSuffix(t *testing.T) {
	f := FieldSet{TalentName: "jane doe", GreenScreen: true}
	if got := Normalize(f).Talent; got != "JaneDoeGS" {
		t.Errorf("Talent = %q, want JaneDoeGS", got)
	}

	f = FieldSet{GreenScreen: true}
	if got := Normalize(f).Talent; got != "TalentNameGS" {
		t.Errorf("empty Talent = %q, want TalentNameGS", got)
	}
}

func TestNormalize_StripsSpacesFromNames(t *testing.T) {
	f := FieldSet{SongName: "Summer Vibes", GMMName: "Anna  Smith", VoiceName: " Rachel V "}
	tok := Normalize(f)
	if tok.Song != "SummerVibes" || tok.GMM != "AnnaSmith" || tok.Voice != "RachelV" {
		t.Errorf("got song=%q gmm=%q voice=%q", tok.Song, tok.GMM, tok.Voice)
	}
}
