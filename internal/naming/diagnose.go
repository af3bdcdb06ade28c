package naming

import (
	"fmt"
	"regexp"
	"strings"
)

// DiagnosticKind classifies a [Diagnostic].
type DiagnosticKind string

const (
	DiagPlaceholder     DiagnosticKind = "placeholder"      // Empty field rendered as a placeholder token.
	DiagOverflow        DiagnosticKind = "overflow"         // Number wider than its padded width.
	DiagUnknownCode     DiagnosticKind = "unknown_code"     // Code missing from the dictionary.
	DiagUnknownCategory DiagnosticKind = "unknown_category" // Category outside the rule table.
)

// Diagnostic describes one questionable input behind a generated name.
type Diagnostic struct {
	Field   Field
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	if d.Field == "" {
		return string(d.Kind) + ": " + d.Message
	}
	return string(d.Field) + ": " + d.Message
}

// CodeSet answers whether a code belongs to a dictionary domain
// ("technology", "product", "scene").
type CodeSet interface {
	Has(domain, code string) bool
}

// paddedWidths lists the zero-padded numeric fields and their widths.
var paddedWidths = map[Field]int{
	FieldIHPNumber:   3,
	FieldMicNumber:   3,
	FieldSceneNumber: 2,
}

var placeholders = map[Field]string{
	FieldIHPNumber:     "000",
	FieldMicNumber:     "000",
	FieldSceneNumber:   "00",
	FieldVideoID:       PlaceholderVideoID,
	FieldTimecode:      PlaceholderTimecode,
	FieldTechnology:    PlaceholderTechnology,
	FieldProduct:       PlaceholderProduct,
	FieldScene:         PlaceholderScene,
	FieldPlatform:      PlaceholderPlatform,
	FieldTalentName:    PlaceholderTalent,
	FieldCelebrityName: PlaceholderCelebrity,
	FieldKeywords:      PlaceholderKeywords,
	FieldSongName:      PlaceholderSong,
	FieldGMMName:       PlaceholderGMM,
	FieldVoiceName:     PlaceholderVoice,
	FieldSequenceLabel: PlaceholderSequence,
}

var checkedDomains = map[Field]string{
	FieldTechnology: "technology",
	FieldProduct:    "product",
	FieldScene:      "scene",
}

var reDigits = regexp.MustCompile(`[0-9]`)

// Diagnose inspects the fields category c reads from f. codes may be nil,
// in which case dictionary membership is not checked. Inputs the grammar
// ignores are never reported.
func Diagnose(c Category, f FieldSet, codes CodeSet) []Diagnostic {
	rule, ok := lookupRule(c)
	if !ok {
		return []Diagnostic{{
			Kind:    DiagUnknownCategory,
			Message: fmt.Sprintf("%q is not a known category (use one of: %s)", string(c), categoryList()),
		}}
	}

	var out []Diagnostic
	for _, field := range rule.Fields(f) {
		if field == FieldDate {
			if f.Date.IsZero() {
				out = append(out, Diagnostic{Field: field, Kind: DiagPlaceholder, Message: "unset, rendered as year 0001"})
			}
			continue
		}
		raw := f.value(field)

		if ph, ok := placeholders[field]; ok && placeholderApplies(field, raw) {
			out = append(out, Diagnostic{
				Field:   field,
				Kind:    DiagPlaceholder,
				Message: fmt.Sprintf("empty, rendered as %q", ph),
			})
			continue
		}

		if width, ok := paddedWidths[field]; ok {
			if n := len(reDigits.FindAllString(raw, -1)); n > width {
				out = append(out, Diagnostic{
					Field:   field,
					Kind:    DiagOverflow,
					Message: fmt.Sprintf("%d digits exceed width %d; kept as-is", n, width),
				})
			}
		}

		if domain, ok := checkedDomains[field]; ok && codes != nil && !codes.Has(domain, strings.TrimSpace(raw)) {
			out = append(out, Diagnostic{
				Field:   field,
				Kind:    DiagUnknownCode,
				Message: fmt.Sprintf("%q is not a known %s code", strings.TrimSpace(raw), domain),
			})
		}
	}
	return out
}

// placeholderApplies reports whether raw would be replaced by a
// placeholder. Padded numbers count as empty when they hold no digits.
func placeholderApplies(field Field, raw string) bool {
	if _, ok := paddedWidths[field]; ok {
		return !reDigits.MatchString(raw)
	}
	return isBlank(raw)
}
