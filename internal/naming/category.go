package naming

import (
	"errors"
	"fmt"
	"strings"
)

// Category selects one of the fixed filename grammars.
type Category string

const (
	CategoryIHP         Category = "ihp"          // In-house production.
	CategoryPCC         Category = "pcc"          // Social-campaign content.
	CategoryMicro       Category = "micro"        // Micro-content.
	CategorySelects     Category = "selects"      // Curated selects.
	CategoryScreenshot  Category = "screenshot"   // Screenshot assets.
	CategoryStock       Category = "stock"        // Licensed stock footage.
	CategoryAI          Category = "ai"           // AI-generated footage.
	CategoryVO          Category = "vo"           // Voice-over audio.
	CategoryAudioAssets Category = "audio_assets" // Music and sound effects.
)

// Group is the sidebar section a category is listed under.
type Group string

const (
	GroupProduction Group = "Production"
	GroupSocial     Group = "Social"
	GroupAssets     Group = "Assets"
	GroupAI         Group = "AI"
	GroupAudio      Group = "Audio"
)

// ErrUnknownCategory is returned by [ParseCategory] for ids outside the
// closed category set.
var ErrUnknownCategory = errors.New("unknown category")

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(Rules))
	for i, r := range Rules {
		out[i] = r.Category
	}
	return out
}

// ParseCategory resolves a category id, ignoring case and surrounding
// whitespace.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := lookupRule(c); !ok {
		return "", fmt.Errorf("%w %q (use one of: %s)", ErrUnknownCategory, s, categoryList())
	}
	return c, nil
}

// Label returns the human-readable name, or the raw id when unknown.
func (c Category) Label() string {
	if r, ok := lookupRule(c); ok {
		return r.Label
	}
	return string(c)
}

// Group returns the display group; empty for unknown categories.
func (c Category) Group() Group {
	if r, ok := lookupRule(c); ok {
		return r.Group
	}
	return ""
}

// Valid reports whether c is one of the nine known categories.
func (c Category) Valid() bool {
	_, ok := lookupRule(c)
	return ok
}

func categoryList() string {
	ids := make([]string, len(Rules))
	for i, r := range Rules {
		ids[i] = string(r.Category)
	}
	return strings.Join(ids, ", ")
}
