package naming

import "time"

// MediaSubtype narrows a category to one of its media variants. The valid
// domain depends on the category (ihp/pcc: video|photo, screenshot:
// video|still, audio_assets: music|sfx).
type MediaSubtype string

const (
	SubtypeVideo MediaSubtype = "video"
	SubtypePhoto MediaSubtype = "photo"
	SubtypeStill MediaSubtype = "still"
	SubtypeMusic MediaSubtype = "music"
	SubtypeSFX   MediaSubtype = "sfx"
)

// Valid reports whether s is one of the known subtypes.
func (s MediaSubtype) Valid() bool {
	switch s {
	case SubtypeVideo, SubtypePhoto, SubtypeStill, SubtypeMusic, SubtypeSFX:
		return true
	}
	return false
}

// VoiceoverSource picks the identifier token of a voice-over filename.
type VoiceoverSource string

const (
	VOSourceGMM      VoiceoverSource = "gmm"
	VOSourceAIGMM    VoiceoverSource = "ai_gmm"
	VOSourceAIPCC    VoiceoverSource = "ai_pcc"
	VOSourceTikTok   VoiceoverSource = "tiktok"
	VOSourceRandomAI VoiceoverSource = "random_ai"
)

// Valid reports whether s is one of the known sources.
func (s VoiceoverSource) Valid() bool {
	switch s {
	case VOSourceGMM, VOSourceAIGMM, VOSourceAIPCC, VOSourceTikTok, VOSourceRandomAI:
		return true
	}
	return false
}

// AIProvenance records what an AI-generated asset was derived from.
type AIProvenance string

const (
	AIGeneric AIProvenance = "generic"
	AIFromPCC AIProvenance = "from_pcc"
	AIFromIHP AIProvenance = "from_ihp"
)

// Valid reports whether p is one of the known provenances.
func (p AIProvenance) Valid() bool {
	return p == AIGeneric || p == AIFromPCC || p == AIFromIHP
}

// FieldSet holds every value a user can enter, independent of category.
// Each grammar reads only the subset it needs and ignores the rest.
// Generation never modifies a FieldSet.
type FieldSet struct {
	Date time.Time `yaml:"-"`

	// Identifiers.
	IHPNumber   string `yaml:"ihp_number"`
	MicNumber   string `yaml:"mic_number"`
	VideoID     string `yaml:"video_id"`
	SceneNumber string `yaml:"scene_number"`
	Timecode    string `yaml:"timecode"` // Start frame for retouched/tuned media.

	// Dictionary codes.
	Technology string `yaml:"technology"`
	Product    string `yaml:"product"`
	Scene      string `yaml:"scene"`
	Platform   string `yaml:"platform"`

	// Free text.
	TalentName    string `yaml:"talent_name"`
	CelebrityName string `yaml:"celebrity_name"`
	Keywords      string `yaml:"keywords"`
	SongName      string `yaml:"song_name"`
	ComposerName  string `yaml:"composer_name"` // Collected, never rendered.
	GMMName       string `yaml:"gmm_name"`
	VoiceName     string `yaml:"voice_name"`
	SequenceLabel string `yaml:"sequence_label"`

	// Mode selectors.
	MediaSubtype    MediaSubtype    `yaml:"media_subtype"`
	VoiceoverSource VoiceoverSource `yaml:"voiceover_source"`
	AIProvenance    AIProvenance    `yaml:"ai_provenance"`

	// Flags. Retouched doubles as "audiotuned" for voice-over.
	GreenScreen    bool `yaml:"green_screen"`
	Retouched      bool `yaml:"retouched"`
	ProductVisible bool `yaml:"product_visible"`
	IsCelebrity    bool `yaml:"is_celebrity"`
}

// NewFieldSet returns the state of a fresh editing session: empty text,
// video subtype, GMM voice-over source and generic AI provenance.
func NewFieldSet(date time.Time) FieldSet {
	return FieldSet{
		Date:            date,
		MediaSubtype:    SubtypeVideo,
		VoiceoverSource: VOSourceGMM,
		AIProvenance:    AIGeneric,
	}
}

// Field names one FieldSet input in diagnostics.
type Field string

const (
	FieldDate            Field = "date"
	FieldIHPNumber       Field = "ihp_number"
	FieldMicNumber       Field = "mic_number"
	FieldVideoID         Field = "video_id"
	FieldSceneNumber     Field = "scene_number"
	FieldTimecode        Field = "timecode"
	FieldTechnology      Field = "technology"
	FieldProduct         Field = "product"
	FieldScene           Field = "scene"
	FieldPlatform        Field = "platform"
	FieldTalentName      Field = "talent_name"
	FieldCelebrityName   Field = "celebrity_name"
	FieldKeywords        Field = "keywords"
	FieldSongName        Field = "song_name"
	FieldComposerName    Field = "composer_name"
	FieldGMMName         Field = "gmm_name"
	FieldVoiceName       Field = "voice_name"
	FieldSequenceLabel   Field = "sequence_label"
	FieldMediaSubtype    Field = "media_subtype"
	FieldVoiceoverSource Field = "voiceover_source"
	FieldAIProvenance    Field = "ai_provenance"
)

// value returns the raw text behind a text field; empty for non-text fields.
func (f FieldSet) value(field Field) string {
	switch field {
	case FieldIHPNumber:
		return f.IHPNumber
	case FieldMicNumber:
		return f.MicNumber
	case FieldVideoID:
		return f.VideoID
	case FieldSceneNumber:
		return f.SceneNumber
	case FieldTimecode:
		return f.Timecode
	case FieldTechnology:
		return f.Technology
	case FieldProduct:
		return f.Product
	case FieldScene:
		return f.Scene
	case FieldPlatform:
		return f.Platform
	case FieldTalentName:
		return f.TalentName
	case FieldCelebrityName:
		return f.CelebrityName
	case FieldKeywords:
		return f.Keywords
	case FieldSongName:
		return f.SongName
	case FieldComposerName:
		return f.ComposerName
	case FieldGMMName:
		return f.GMMName
	case FieldVoiceName:
		return f.VoiceName
	case FieldSequenceLabel:
		return f.SequenceLabel
	case FieldMediaSubtype:
		return string(f.MediaSubtype)
	case FieldVoiceoverSource:
		return string(f.VoiceoverSource)
	case FieldAIProvenance:
		return string(f.AIProvenance)
	}
	return ""
}
