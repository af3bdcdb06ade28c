package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/backmassage/assetnamer/internal/batch"
	"github.com/backmassage/assetnamer/internal/display"
	"github.com/backmassage/assetnamer/internal/naming"
)

// generateFlags collects the raw flag values of one generate invocation.
type generateFlags struct {
	date     string
	subtype  string
	voSource string
	aiFrom   string
	diagnose bool
	fields   naming.FieldSet
}

func newGenerateCmd(a *app) *cobra.Command {
	gf := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the filename for one asset",
		Long: "Print the filename for one asset on stdout. Empty fields render as\n" +
			"placeholder tokens; --diagnose lists every substitution on stderr.",
		Example: "  assetnamer generate -c ihp --date 2024-03-05 --ihp 7 --tech CAM --product FOU --scene PH --talent \"jane doe\"\n" +
			"  assetnamer generate -c stock --platform getty --video-id 1029 --keywords \"happy skin\"",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, gf)
		},
	}
	defineGenerateFlags(cmd.Flags(), gf)
	return cmd
}

func defineGenerateFlags(fs *pflag.FlagSet, gf *generateFlags) {
	f := &gf.fields
	fs.StringP("category", "c", "", "Category: "+categoryNames()+" (default from config)")
	fs.StringVarP(&gf.date, "date", "d", "", "Date as YYYY-MM-DD (default today)")

	fs.StringVar(&f.IHPNumber, "ihp", "", "IHP number (padded to 3 digits)")
	fs.StringVar(&f.MicNumber, "mic", "", "Micro-content number (padded to 3 digits)")
	fs.StringVar(&f.VideoID, "video-id", "", "Stock or voice-over video ID")
	fs.StringVar(&f.SceneNumber, "scene-number", "", "Scene number for photos and stills (padded to 2 digits)")
	fs.StringVar(&f.Timecode, "timecode", "", "Start timecode of retouched media")

	fs.StringVar(&f.Technology, "tech", "", "Technology code (see 'assetnamer lexicon technology')")
	fs.StringVar(&f.Product, "product", "", "Product code (see 'assetnamer lexicon product')")
	fs.StringVar(&f.Scene, "scene", "", "Scene code (see 'assetnamer lexicon scene')")
	fs.StringVar(&f.Platform, "platform", "", "Platform or source (free text)")

	fs.StringVar(&f.TalentName, "talent", "", "Talent name")
	fs.StringVar(&f.CelebrityName, "celeb", "", "Celebrity name")
	fs.StringVar(&f.Keywords, "keywords", "", "Keywords or description")
	fs.StringVar(&f.SongName, "song", "", "Song name")
	fs.StringVar(&f.ComposerName, "composer", "", "Composer name (recorded, not rendered)")
	fs.StringVar(&f.GMMName, "gmm", "", "GMM voice name")
	fs.StringVar(&f.VoiceName, "voice", "", "AI voice name")
	fs.StringVar(&f.SequenceLabel, "sequence", "", "Voice-over sequence label")

	fs.StringVar(&gf.subtype, "subtype", string(naming.SubtypeVideo), "Media subtype: video | photo | still | music | sfx")
	fs.StringVar(&gf.voSource, "vo-source", string(naming.VOSourceGMM), "Voice-over source: gmm | ai_gmm | ai_pcc | tiktok | random_ai")
	fs.StringVar(&gf.aiFrom, "ai-from", string(naming.AIGeneric), "AI provenance: generic | from_pcc | from_ihp")

	fs.BoolVar(&f.GreenScreen, "green-screen", false, "Shot on green screen (appends GS to the talent)")
	fs.BoolVar(&f.Retouched, "retouched", false, "Retouched (audio-tuned for voice-over)")
	fs.BoolVar(&f.ProductVisible, "product-visible", false, "AI footage shows the product")
	fs.BoolVar(&f.IsCelebrity, "celebrity", false, "Celebrity asset (ihp, pcc)")

	fs.BoolVar(&gf.diagnose, "diagnose", false, "Report every placeholder substitution")
}

func categoryNames() string {
	cats := naming.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, " | ")
}

// fieldSet validates the mode flags and the date and returns the FieldSet
// to render.
func (gf *generateFlags) fieldSet(now time.Time) (naming.FieldSet, error) {
	f := gf.fields

	date := now
	if gf.date != "" {
		t, err := time.Parse(batch.DateLayout, strings.TrimSpace(gf.date))
		if err != nil {
			return naming.FieldSet{}, fmt.Errorf("invalid --date %q (use YYYY-MM-DD)", gf.date)
		}
		date = t
	}
	f.Date = date

	f.MediaSubtype = naming.MediaSubtype(strings.ToLower(gf.subtype))
	if !f.MediaSubtype.Valid() {
		return naming.FieldSet{}, fmt.Errorf("invalid --subtype %q", gf.subtype)
	}
	f.VoiceoverSource = naming.VoiceoverSource(strings.ToLower(gf.voSource))
	if !f.VoiceoverSource.Valid() {
		return naming.FieldSet{}, fmt.Errorf("invalid --vo-source %q", gf.voSource)
	}
	f.AIProvenance = naming.AIProvenance(strings.ToLower(gf.aiFrom))
	if !f.AIProvenance.Valid() {
		return naming.FieldSet{}, fmt.Errorf("invalid --ai-from %q", gf.aiFrom)
	}
	return f, nil
}

func (a *app) runGenerate(cmd *cobra.Command, gf *generateFlags) error {
	// --category is bound to the default_category key, so the validated
	// config already holds the flag value when one was given.
	c := naming.Category(a.cfg.DefaultCategory)

	f, err := gf.fieldSet(time.Now())
	if err != nil {
		return err
	}

	name := naming.Generate(c, f)
	a.log.Debug("%s %s: %s", c, f.Date.Format(batch.DateLayout), name)

	for _, d := range naming.Diagnose(c, f, a.lex) {
		if d.Kind == naming.DiagPlaceholder && !gf.diagnose {
			continue
		}
		a.log.Warn("%s", display.FormatDiagnostic(d))
	}

	fmt.Fprintln(cmd.OutOrStdout(), name)
	return nil
}
