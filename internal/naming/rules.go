package naming

import "strings"

// Rule binds a category to its grammar. Build assembles the filename from
// normalized tokens; the raw FieldSet is consulted only for mode selectors,
// flags and emptiness checks. Fields lists the inputs the active branch
// reads, in form order.
type Rule struct {
	Category Category
	Label    string
	Group    Group
	Build    func(t Tokens, f FieldSet) string
	Fields   func(f FieldSet) []Field
}

// Rules is the closed grammar table in display order.
var Rules = []Rule{
	{CategoryIHP, "IHP Production", GroupProduction, buildIHP, fieldsIHP},
	{CategoryMicro, "Micro Content", GroupProduction, buildMicro, fieldsMicro},
	{CategorySelects, "Selects", GroupProduction, buildSelects, fieldsSelects},
	{CategoryPCC, "PCC", GroupSocial, buildPCC, fieldsPCC},
	{CategoryScreenshot, "Screenshots", GroupAssets, buildScreenshot, fieldsScreenshot},
	{CategoryStock, "Stock Footage", GroupAssets, buildStock, fieldsStock},
	{CategoryAI, "AI Footage", GroupAI, buildAI, fieldsAI},
	{CategoryVO, "Voice Over", GroupAudio, buildVO, fieldsVO},
	{CategoryAudioAssets, "Music & SFX", GroupAudio, buildAudioAssets, fieldsAudioAssets},
}

func lookupRule(c Category) (Rule, bool) {
	for _, r := range Rules {
		if r.Category == c {
			return r, true
		}
	}
	return Rule{}, false
}

// --- Suffix literals (casing differs per category and media) ---

const (
	tcInMarker       = " [TC-IN]"
	retouchedLower   = "_retouched"
	retouchedUpper   = "_RETOUCHED"
	audiotunedSuffix = "_AUDIOTUNED"
)

func join(tokens ...string) string { return strings.Join(tokens, "_") }

func withDate(base string, t Tokens) string { return base + " (" + t.FullDate + ")" }

// --- Grammars ---

func buildIHP(t Tokens, f FieldSet) string {
	if f.IsCelebrity {
		base := join(t.YearMonth, "IHP", t.Technology, t.Product, "CELEB", t.Celebrity)
		if f.Retouched {
			return base + retouchedLower + t.Timecode + tcInMarker
		}
		return base
	}

	if f.MediaSubtype == SubtypePhoto {
		base := join(t.YearMonth, "IHP"+t.IHPNumber, t.Technology, t.Product, t.Scene+t.SceneNumber, t.Talent)
		if f.Retouched {
			return base + retouchedUpper
		}
		return base
	}

	base := join(t.YearMonth, "IHP"+t.IHPNumber, t.Technology, t.Product, t.Scene, t.Talent)
	if f.Retouched {
		return base + retouchedLower + t.Timecode + tcInMarker
	}
	return base
}

func buildPCC(t Tokens, f FieldSet) string {
	if f.IsCelebrity {
		base := join("CELEB", t.Product, t.Celebrity)
		if f.Retouched {
			base += retouchedLower + t.Timecode
		}
		return withDate(base, t)
	}

	if f.MediaSubtype == SubtypePhoto {
		base := join("PCC", t.Product, t.Talent, "SCENE"+t.SceneNumber)
		if f.Retouched {
			base += retouchedUpper
		}
		return withDate(base, t)
	}

	base := join("PCC", t.Product, t.Talent)
	if f.Retouched {
		base += retouchedLower + t.Timecode
	}
	return withDate(base, t)
}

func buildMicro(t Tokens, f FieldSet) string {
	base := join(t.YearMonth, "MIC"+t.MicNumber, t.Technology, t.Product, t.Scene, t.Keywords)
	if f.Retouched {
		return base + retouchedLower + t.Timecode
	}
	return base
}

// buildSelects always carries the RETOUCHED marker: selects are
// retouched by definition.
func buildSelects(t Tokens, _ FieldSet) string {
	return join(t.YearMonth, "IHP"+t.IHPNumber, t.Technology, t.Product, t.Scene, "SELECT", t.Talent, "RETOUCHED")
}

func buildScreenshot(t Tokens, f FieldSet) string {
	if f.MediaSubtype == SubtypeStill {
		base := join("SCREEN", t.Product, "SCENE"+t.SceneNumber, t.Keywords)
		if f.Retouched {
			base += retouchedUpper
		}
		return withDate(base, t)
	}

	subject := t.Keywords
	if !isBlank(f.TalentName) {
		subject = t.Talent
	}
	base := join("SCREEN", t.Product, t.Scene, subject)
	if f.Retouched {
		base += retouchedUpper + t.Timecode
	}
	return withDate(base, t)
}

func buildStock(t Tokens, _ FieldSet) string {
	return join("STOCK", t.Platform, t.VideoID, t.Keywords)
}

func buildAI(t Tokens, f FieldSet) string {
	parts := []string{"AI"}
	switch {
	case f.AIProvenance == AIFromPCC:
		parts = append(parts, "PCC", t.Talent)
	case f.AIProvenance == AIFromIHP:
		parts = append(parts, "IHP", t.Talent)
	case f.ProductVisible:
		parts = append(parts, t.Product)
	}
	parts = append(parts, t.Keywords)
	return withDate(join(parts...), t)
}

// voIdentifier is the fallback identifier for an unrecognized source.
const voIdentifier = "ID"

func voiceoverIdentifier(t Tokens, src VoiceoverSource) string {
	switch src {
	case VOSourceGMM:
		return t.GMM
	case VOSourceAIGMM:
		return "AI-" + t.GMM
	case VOSourceAIPCC:
		return "AI-" + t.Talent
	case VOSourceTikTok:
		return "TT"
	case VOSourceRandomAI:
		return "AI-" + t.Platform + "-" + t.Voice
	}
	return voIdentifier
}

func buildVO(t Tokens, f FieldSet) string {
	base := join("VO", t.Product, t.VideoID, t.Sequence, voiceoverIdentifier(t, f.VoiceoverSource), t.Keywords)
	if f.Retouched {
		base += audiotunedSuffix
	}
	return withDate(base, t)
}

// buildAudioAssets ignores ComposerName: it is collected for the asset
// record but never part of the filename.
func buildAudioAssets(t Tokens, f FieldSet) string {
	if f.MediaSubtype == SubtypeSFX {
		return join("SFX", t.Platform, t.Keywords)
	}
	return join("MUSIC", t.Platform, t.Song)
}

// --- Fields read per grammar branch ---

func withTimecode(fields []Field, f FieldSet) []Field {
	if f.Retouched {
		return append(fields, FieldTimecode)
	}
	return fields
}

func fieldsIHP(f FieldSet) []Field {
	if f.IsCelebrity {
		return withTimecode([]Field{FieldDate, FieldTechnology, FieldProduct, FieldCelebrityName}, f)
	}
	if f.MediaSubtype == SubtypePhoto {
		return []Field{FieldDate, FieldIHPNumber, FieldTechnology, FieldProduct, FieldScene, FieldSceneNumber, FieldTalentName}
	}
	return withTimecode([]Field{FieldDate, FieldIHPNumber, FieldTechnology, FieldProduct, FieldScene, FieldTalentName}, f)
}

func fieldsPCC(f FieldSet) []Field {
	if f.IsCelebrity {
		return withTimecode([]Field{FieldDate, FieldProduct, FieldCelebrityName}, f)
	}
	if f.MediaSubtype == SubtypePhoto {
		return []Field{FieldDate, FieldProduct, FieldTalentName, FieldSceneNumber}
	}
	return withTimecode([]Field{FieldDate, FieldProduct, FieldTalentName}, f)
}

func fieldsMicro(f FieldSet) []Field {
	return withTimecode([]Field{FieldDate, FieldMicNumber, FieldTechnology, FieldProduct, FieldScene, FieldKeywords}, f)
}

func fieldsSelects(FieldSet) []Field {
	return []Field{FieldDate, FieldIHPNumber, FieldTechnology, FieldProduct, FieldScene, FieldTalentName}
}

func fieldsScreenshot(f FieldSet) []Field {
	if f.MediaSubtype == SubtypeStill {
		return []Field{FieldDate, FieldProduct, FieldSceneNumber, FieldKeywords}
	}
	subject := FieldKeywords
	if !isBlank(f.TalentName) {
		subject = FieldTalentName
	}
	return withTimecode([]Field{FieldDate, FieldProduct, FieldScene, subject}, f)
}

func fieldsStock(FieldSet) []Field {
	return []Field{FieldPlatform, FieldVideoID, FieldKeywords}
}

func fieldsAI(f FieldSet) []Field {
	fields := []Field{FieldDate, FieldAIProvenance}
	switch {
	case f.AIProvenance == AIFromPCC, f.AIProvenance == AIFromIHP:
		fields = append(fields, FieldTalentName)
	case f.ProductVisible:
		fields = append(fields, FieldProduct)
	}
	return append(fields, FieldKeywords)
}

func fieldsVO(f FieldSet) []Field {
	fields := []Field{FieldDate, FieldVoiceoverSource, FieldProduct, FieldVideoID, FieldSequenceLabel}
	switch f.VoiceoverSource {
	case VOSourceGMM, VOSourceAIGMM:
		fields = append(fields, FieldGMMName)
	case VOSourceAIPCC:
		fields = append(fields, FieldTalentName)
	case VOSourceRandomAI:
		fields = append(fields, FieldPlatform, FieldVoiceName)
	}
	return append(fields, FieldKeywords)
}

func fieldsAudioAssets(f FieldSet) []Field {
	if f.MediaSubtype == SubtypeSFX {
		return []Field{FieldMediaSubtype, FieldPlatform, FieldKeywords}
	}
	return []Field{FieldMediaSubtype, FieldPlatform, FieldSongName, FieldComposerName}
}
