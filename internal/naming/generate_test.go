package naming

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var testDate = time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

// base returns a fresh session dated testDate with fn applied.
func base(fn func(*FieldSet)) FieldSet {
	f := NewFieldSet(testDate)
	if fn != nil {
		fn(&f)
	}
	return f
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name     string
		category Category
		fields   FieldSet
		want     string
	}{
		// ihp
		{
			name: "ihp video (scenario A)", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.Technology, f.Product, f.Scene = "CAM", "FOU", "PH"
				f.IHPNumber, f.TalentName = "7", "jane doe"
			}),
			want: "2024.03_IHP007_CAM_FOU_PH_JaneDoe",
		},
		{
			name: "ihp video retouched (scenario B)", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.Technology, f.Product, f.Scene = "CAM", "FOU", "PH"
				f.IHPNumber, f.TalentName = "7", "jane doe"
				f.Retouched, f.Timecode = true, "001200"
			}),
			want: "2024.03_IHP007_CAM_FOU_PH_JaneDoe_retouched001200 [TC-IN]",
		},
		{
			name: "ihp photo", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype = SubtypePhoto
				f.Technology, f.Product, f.Scene = "CAM", "FOU", "PH"
				f.IHPNumber, f.SceneNumber, f.TalentName = "7", "3", "jane doe"
			}),
			want: "2024.03_IHP007_CAM_FOU_PH03_JaneDoe",
		},
		{
			name: "ihp photo retouched ignores timecode", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype = SubtypePhoto
				f.Technology, f.Product, f.Scene = "CAM", "FOU", "PH"
				f.IHPNumber, f.SceneNumber, f.TalentName = "7", "3", "jane doe"
				f.Retouched, f.Timecode = true, "001200"
			}),
			want: "2024.03_IHP007_CAM_FOU_PH03_JaneDoe_RETOUCHED",
		},
		{
			name: "ihp green screen", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.Technology, f.Product, f.Scene = "iPH", "ACN", "GS"
				f.IHPNumber, f.TalentName, f.GreenScreen = "12", "jane doe", true
			}),
			want: "2024.03_IHP012_iPH_ACN_GS_JaneDoeGS",
		},
		{
			name: "ihp celebrity", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.IsCelebrity = true
				f.Technology, f.Product, f.CelebrityName = "CAM", "FOU", "amy lee"
				f.IHPNumber, f.Scene, f.TalentName = "7", "PH", "ignored"
			}),
			want: "2024.03_IHP_CAM_FOU_CELEB_AmyLee",
		},
		{
			name: "ihp celebrity retouched", category: CategoryIHP,
			fields: base(func(f *FieldSet) {
				f.IsCelebrity, f.Retouched = true, true
				f.Technology, f.Product, f.CelebrityName, f.Timecode = "CAM", "FOU", "amy lee", "000500"
			}),
			want: "2024.03_IHP_CAM_FOU_CELEB_AmyLee_retouched000500 [TC-IN]",
		},

		// pcc
		{
			name: "pcc celebrity retouched (scenario C)", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.IsCelebrity, f.Retouched = true, true
				f.Product, f.CelebrityName, f.Timecode = "ACN", "amy lee", "000500"
			}),
			want: "CELEB_ACN_AmyLee_retouched000500 (03.05.24)",
		},
		{
			name: "pcc celebrity", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.IsCelebrity = true
				f.Product, f.CelebrityName = "ACN", "amy lee"
			}),
			want: "CELEB_ACN_AmyLee (03.05.24)",
		},
		{
			name: "pcc photo", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype = SubtypePhoto
				f.Product, f.TalentName, f.SceneNumber = "ACN", "jane doe", "4"
			}),
			want: "PCC_ACN_JaneDoe_SCENE04 (03.05.24)",
		},
		{
			name: "pcc photo retouched", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype, f.Retouched = SubtypePhoto, true
				f.Product, f.TalentName, f.SceneNumber = "ACN", "jane doe", "4"
			}),
			want: "PCC_ACN_JaneDoe_SCENE04_RETOUCHED (03.05.24)",
		},
		{
			name: "pcc video", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.Product, f.TalentName = "ACN", "jane doe"
			}),
			want: "PCC_ACN_JaneDoe (03.05.24)",
		},
		{
			name: "pcc video retouched", category: CategoryPCC,
			fields: base(func(f *FieldSet) {
				f.Product, f.TalentName = "ACN", "jane doe"
				f.Retouched, f.Timecode = true, "000100"
			}),
			want: "PCC_ACN_JaneDoe_retouched000100 (03.05.24)",
		},

		// micro
		{
			name: "micro", category: CategoryMicro,
			fields: base(func(f *FieldSet) {
				f.MicNumber, f.Technology, f.Product, f.Scene = "12", "CAM", "FOU", "BROLL"
				f.Keywords = "Morning Routine"
			}),
			want: "2024.03_MIC012_CAM_FOU_BROLL_morning-routine",
		},
		{
			name: "micro retouched without timecode", category: CategoryMicro,
			fields: base(func(f *FieldSet) {
				f.MicNumber, f.Technology, f.Product, f.Scene = "12", "CAM", "FOU", "BROLL"
				f.Keywords, f.Retouched = "Morning Routine", true
			}),
			want: "2024.03_MIC012_CAM_FOU_BROLL_morning-routine_retouched######",
		},

		// selects
		{
			name: "selects", category: CategorySelects,
			fields: base(func(f *FieldSet) {
				f.IHPNumber, f.Technology, f.Product, f.Scene = "7", "CAM", "FOU", "PH"
				f.TalentName = "jane doe"
			}),
			want: "2024.03_IHP007_CAM_FOU_PH_SELECT_JaneDoe_RETOUCHED",
		},

		// screenshot
		{
			name: "screenshot still", category: CategoryScreenshot,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype = SubtypeStill
				f.Product, f.SceneNumber, f.Keywords = "FOU", "1", "close up"
			}),
			want: "SCREEN_FOU_SCENE01_close-up (03.05.24)",
		},
		{
			name: "screenshot still retouched has no timecode", category: CategoryScreenshot,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype, f.Retouched, f.Timecode = SubtypeStill, true, "000200"
				f.Product, f.SceneNumber, f.Keywords = "FOU", "1", "close up"
			}),
			want: "SCREEN_FOU_SCENE01_close-up_RETOUCHED (03.05.24)",
		},
		{
			name: "screenshot video with talent", category: CategoryScreenshot,
			fields: base(func(f *FieldSet) {
				f.Product, f.Scene, f.TalentName, f.Keywords = "FOU", "APPLY", "jane doe", "close up"
			}),
			want: "SCREEN_FOU_APPLY_JaneDoe (03.05.24)",
		},
		{
			name: "screenshot video falls back to keywords", category: CategoryScreenshot,
			fields: base(func(f *FieldSet) {
				f.Product, f.Scene, f.Keywords = "FOU", "APPLY", "close up"
			}),
			want: "SCREEN_FOU_APPLY_close-up (03.05.24)",
		},
		{
			name: "screenshot video retouched", category: CategoryScreenshot,
			fields: base(func(f *FieldSet) {
				f.Product, f.Scene, f.TalentName = "FOU", "APPLY", "jane doe"
				f.Retouched, f.Timecode = true, "000200"
			}),
			want: "SCREEN_FOU_APPLY_JaneDoe_RETOUCHED000200 (03.05.24)",
		},

		// stock
		{
			name: "stock (scenario D)", category: CategoryStock,
			fields: base(func(f *FieldSet) {
				f.Platform, f.VideoID, f.Keywords = "Shutterstock", "1029", "happy skin"
			}),
			want: "STOCK_SHUTTERSTOCK_1029_happy-skin",
		},
		{
			name: "stock placeholders", category: CategoryStock,
			fields: base(nil),
			want:   "STOCK_PLATFORM_###.##_description",
		},

		// ai
		{
			name: "ai generic", category: CategoryAI,
			fields: base(func(f *FieldSet) { f.Product, f.Keywords = "ACN", "glow" }),
			want:   "AI_glow (03.05.24)",
		},
		{
			name: "ai generic product visible", category: CategoryAI,
			fields: base(func(f *FieldSet) {
				f.Product, f.Keywords, f.ProductVisible = "ACN", "glow", true
			}),
			want: "AI_ACN_glow (03.05.24)",
		},
		{
			name: "ai from pcc ignores product flag", category: CategoryAI,
			fields: base(func(f *FieldSet) {
				f.AIProvenance, f.ProductVisible = AIFromPCC, true
				f.Product, f.TalentName, f.Keywords = "ACN", "jane doe", "glow"
			}),
			want: "AI_PCC_JaneDoe_glow (03.05.24)",
		},
		{
			name: "ai from ihp", category: CategoryAI,
			fields: base(func(f *FieldSet) {
				f.AIProvenance = AIFromIHP
				f.TalentName, f.Keywords = "jane doe", "glow"
			}),
			want: "AI_IHP_JaneDoe_glow (03.05.24)",
		},

		// vo
		{
			name: "vo gmm", category: CategoryVO,
			fields: base(func(f *FieldSet) {
				f.Product, f.VideoID, f.SequenceLabel = "ACN", "101.02", "T"
				f.GMMName, f.Keywords = "Anna Smith", "intro hook"
			}),
			want: "VO_ACN_101.02_T_AnnaSmith_intro-hook (03.05.24)",
		},
		{
			name: "vo ai gmm audiotuned", category: CategoryVO,
			fields: base(func(f *FieldSet) {
				f.VoiceoverSource, f.Retouched = VOSourceAIGMM, true
				f.Product, f.VideoID, f.SequenceLabel = "ACN", "101.02", "T"
				f.GMMName, f.Keywords = "Anna Smith", "intro hook"
			}),
			want: "VO_ACN_101.02_T_AI-AnnaSmith_intro-hook_AUDIOTUNED (03.05.24)",
		},
		{
			name: "vo ai pcc", category: CategoryVO,
			fields: base(func(f *FieldSet) {
				f.VoiceoverSource = VOSourceAIPCC
				f.Product, f.VideoID, f.TalentName = "ACN", "101.02", "jane doe"
			}),
			want: "VO_ACN_101.02_SEQ_AI-JaneDoe_description (03.05.24)",
		},
		{
			name: "vo tiktok", category: CategoryVO,
			fields: base(func(f *FieldSet) { f.VoiceoverSource = VOSourceTikTok }),
			want:   "VO_PRD_###.##_SEQ_TT_description (03.05.24)",
		},
		{
			name: "vo random ai", category: CategoryVO,
			fields: base(func(f *FieldSet) {
				f.VoiceoverSource = VOSourceRandomAI
				f.Product, f.Platform, f.VoiceName = "ACN", "eleven labs", "Rachel V"
			}),
			want: "VO_ACN_###.##_SEQ_AI-ELEVENLABS-RachelV_description (03.05.24)",
		},
		{
			name: "vo unknown source", category: CategoryVO,
			fields: base(func(f *FieldSet) { f.VoiceoverSource = "" }),
			want:   "VO_PRD_###.##_SEQ_ID_description (03.05.24)",
		},

		// audio_assets
		{
			name: "sfx", category: CategoryAudioAssets,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype, f.Platform, f.Keywords = SubtypeSFX, "suno", "door slam"
			}),
			want: "SFX_SUNO_door-slam",
		},
		{
			name: "music ignores composer", category: CategoryAudioAssets,
			fields: base(func(f *FieldSet) {
				f.MediaSubtype, f.Platform = SubtypeMusic, "suno"
				f.SongName, f.ComposerName = "Summer Vibes", "Jo Composer"
			}),
			want: "MUSIC_SUNO_SummerVibes",
		},
		{
			name: "music is the default subtype", category: CategoryAudioAssets,
			fields: base(nil),
			want:   "MUSIC_PLATFORM_SongName",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(tc.category, tc.fields)
			if got != tc.want {
				t.Errorf("Generate(%s) = %q\n want %q", tc.category, got, tc.want)
			}
		})
	}
}

func TestGenerate_SelectsAlwaysRetouched(t *testing.T) {
	for _, retouched := range []bool{false, true} {
		f := base(func(f *FieldSet) { f.Retouched = retouched; f.Timecode = "000100" })
		got := Generate(CategorySelects, f)
		if !strings.HasSuffix(got, "_RETOUCHED") {
			t.Errorf("retouched=%v: %q does not end with _RETOUCHED", retouched, got)
		}
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	for _, c := range []Category{"", "celeb", "IHP", "audio"} {
		if got := Generate(c, base(nil)); got != ConfigurationError {
			t.Errorf("Generate(%q) = %q, want %q", c, got, ConfigurationError)
		}
	}
}

func TestGenerate_NeverEmpty(t *testing.T) {
	full := base(func(f *FieldSet) {
		f.IHPNumber, f.MicNumber, f.VideoID, f.SceneNumber, f.Timecode = "1", "2", "3", "4", "000100"
		f.Technology, f.Product, f.Scene, f.Platform = "CAM", "FOU", "PH", "GETTY"
		f.TalentName, f.CelebrityName, f.Keywords = "jane doe", "amy lee", "happy skin"
		f.SongName, f.ComposerName, f.GMMName, f.VoiceName, f.SequenceLabel = "song", "comp", "gmm", "voice", "T"
	})
	variants := []FieldSet{{}, base(nil), full}
	for _, sub := range []MediaSubtype{SubtypePhoto, SubtypeStill, SubtypeSFX} {
		v := full
		v.MediaSubtype = sub
		variants = append(variants, v)
	}
	for _, flags := range []func(*FieldSet){
		func(f *FieldSet) { f.Retouched = true },
		func(f *FieldSet) { f.IsCelebrity = true },
		func(f *FieldSet) { f.GreenScreen, f.ProductVisible = true, true },
	} {
		v := full
		flags(&v)
		variants = append(variants, v)
	}

	for _, c := range Categories() {
		for i, f := range variants {
			got := Generate(c, f)
			if got == "" {
				t.Errorf("%s variant %d: empty name", c, i)
			}
			if got != strings.TrimSpace(got) {
				t.Errorf("%s variant %d: surrounding whitespace in %q", c, i, got)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("%s variant %d: path separator in %q", c, i, got)
			}
		}
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	f := base(func(f *FieldSet) {
		f.TalentName, f.GreenScreen, f.IHPNumber = "jane doe", true, "7"
	})
	before := f
	for _, c := range Categories() {
		_ = Generate(c, f)
	}
	if diff := cmp.Diff(before, f); diff != "" {
		t.Errorf("FieldSet changed (-before +after):\n%s", diff)
	}
}

func TestCategories(t *testing.T) {
	want := []Category{
		CategoryIHP, CategoryMicro, CategorySelects, CategoryPCC,
		CategoryScreenshot, CategoryStock, CategoryAI, CategoryVO, CategoryAudioAssets,
	}
	if diff := cmp.Diff(want, Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"ihp", CategoryIHP, false},
		{" Audio_Assets ", CategoryAudioAssets, false},
		{"VO", CategoryVO, false},
		{"celeb", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("ParseCategory(%q) error %v does not wrap ErrUnknownCategory", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCategoryMetadata(t *testing.T) {
	if got := CategoryAudioAssets.Label(); got != "Music & SFX" {
		t.Errorf("Label = %q", got)
	}
	if got := CategoryPCC.Group(); got != GroupSocial {
		t.Errorf("Group = %q", got)
	}
	if Category("nope").Valid() {
		t.Error("unknown category reported valid")
	}
	if got := Category("nope").Label(); got != "nope" {
		t.Errorf("unknown Label = %q", got)
	}
}
