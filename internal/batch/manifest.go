// Package batch generates names for every entry of a YAML manifest and
// optionally renames the referenced source files.
//
// A manifest looks like:
//
//	defaults:
//	  date: 2024-03-05
//	  product: FOU
//	entries:
//	  - category: ihp
//	    source: raw/clip01.mov
//	    fields: {ihp_number: "7", technology: CAM, talent_name: jane doe}
//
// Keys under defaults are applied first, then each entry's fields on top,
// so an entry can override any default including booleans. Relative source
// and out_dir paths resolve against the manifest's directory.
package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/assetnamer/internal/naming"
)

// DateLayout is the manifest date format.
const DateLayout = "2006-01-02"

// ErrNoEntries is returned for a manifest without entries.
var ErrNoEntries = errors.New("manifest has no entries")

// Manifest is a parsed batch file.
type Manifest struct {
	Path    string // File the manifest was read from; empty for Parse.
	Entries []Entry
}

// Entry is one name to generate.
type Entry struct {
	Index    int             // 1-based position in the manifest.
	Category naming.Category // Empty means "use the configured default".
	Source   string          // File to rename; empty for name-only entries.
	OutDir   string          // Target directory; defaults to the source's directory.
	Fields   naming.FieldSet
}

type rawManifest struct {
	Defaults yaml.Node  `yaml:"defaults"`
	Entries  []rawEntry `yaml:"entries"`
}

type rawEntry struct {
	Category string    `yaml:"category"`
	Date     string    `yaml:"date"`
	Source   string    `yaml:"source"`
	OutDir   string    `yaml:"out_dir"`
	Fields   yaml.Node `yaml:"fields"`
}

// defaultsHeader holds the non-FieldSet keys allowed under defaults.
type defaultsHeader struct {
	Category string `yaml:"category"`
	Date     string `yaml:"date"`
	OutDir   string `yaml:"out_dir"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return m, nil
}

// Parse decodes manifest YAML (or JSON). baseDir anchors relative paths.
func Parse(data []byte, baseDir string) (*Manifest, error) {
	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(raw.Entries) == 0 {
		return nil, ErrNoEntries
	}

	var hdr defaultsHeader
	if err := decodeNode(&raw.Defaults, &hdr); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}
	if err := checkKeys(&raw.Defaults, defaultsKeys); err != nil {
		return nil, fmt.Errorf("defaults: %w", err)
	}

	m := &Manifest{Entries: make([]Entry, 0, len(raw.Entries))}
	for i, re := range raw.Entries {
		e, err := buildEntry(i+1, re, &raw.Defaults, hdr, baseDir)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		m.Entries = append(m.Entries, e)
	}
	return m, nil
}

func buildEntry(index int, re rawEntry, defaults *yaml.Node, hdr defaultsHeader, baseDir string) (Entry, error) {
	e := Entry{Index: index}

	cat := firstNonEmpty(re.Category, hdr.Category)
	if cat != "" {
		c, err := naming.ParseCategory(cat)
		if err != nil {
			return Entry{}, err
		}
		e.Category = c
	}

	date := firstNonEmpty(re.Date, hdr.Date)
	if date == "" {
		return Entry{}, errors.New("missing date")
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Entry{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", date)
	}

	if err := checkKeys(&re.Fields, fieldKeys); err != nil {
		return Entry{}, fmt.Errorf("fields: %w", err)
	}
	e.Fields = naming.NewFieldSet(t)
	if err := decodeNode(defaults, &e.Fields); err != nil {
		return Entry{}, fmt.Errorf("defaults: %w", err)
	}
	if err := decodeNode(&re.Fields, &e.Fields); err != nil {
		return Entry{}, fmt.Errorf("fields: %w", err)
	}
	e.Fields.Date = t
	if err := normalizeModes(&e.Fields); err != nil {
		return Entry{}, err
	}

	e.Source = resolvePath(baseDir, re.Source)
	e.OutDir = resolvePath(baseDir, firstNonEmpty(re.OutDir, hdr.OutDir))
	return e, nil
}

// normalizeModes folds the mode selectors to lower case and rejects values
// outside their known sets, which would otherwise select a fallback grammar.
func normalizeModes(f *naming.FieldSet) error {
	f.MediaSubtype = naming.MediaSubtype(strings.ToLower(strings.TrimSpace(string(f.MediaSubtype))))
	if !f.MediaSubtype.Valid() {
		return fmt.Errorf("invalid media_subtype %q (use video, photo, still, music or sfx)", f.MediaSubtype)
	}
	f.VoiceoverSource = naming.VoiceoverSource(strings.ToLower(strings.TrimSpace(string(f.VoiceoverSource))))
	if !f.VoiceoverSource.Valid() {
		return fmt.Errorf("invalid voiceover_source %q (use gmm, ai_gmm, ai_pcc, tiktok or random_ai)", f.VoiceoverSource)
	}
	f.AIProvenance = naming.AIProvenance(strings.ToLower(strings.TrimSpace(string(f.AIProvenance))))
	if !f.AIProvenance.Valid() {
		return fmt.Errorf("invalid ai_provenance %q (use generic, from_pcc or from_ihp)", f.AIProvenance)
	}
	return nil
}

// decodeNode decodes n into v, treating an absent node as empty.
func decodeNode(n *yaml.Node, v interface{}) error {
	if n.Kind == 0 {
		return nil
	}
	return n.Decode(v)
}

// fieldKeys is the set of YAML keys accepted under fields.
var fieldKeys = yamlKeys(reflect.TypeOf(naming.FieldSet{}))

// defaultsKeys extends fieldKeys with the defaults header.
var defaultsKeys = func() map[string]bool {
	keys := yamlKeys(reflect.TypeOf(defaultsHeader{}))
	for k := range fieldKeys {
		keys[k] = true
	}
	return keys
}()

func yamlKeys(t reflect.Type) map[string]bool {
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			keys[name] = true
		}
	}
	return keys
}

// checkKeys rejects mapping keys outside allowed so typos do not silently
// fall back to placeholders.
func checkKeys(n *yaml.Node, allowed map[string]bool) error {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !allowed[key.Value] {
			return fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return nil
}

func resolvePath(baseDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
