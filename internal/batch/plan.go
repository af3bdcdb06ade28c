package batch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/backmassage/assetnamer/internal/config"
	"github.com/backmassage/assetnamer/internal/naming"
)

// ErrDuplicateTarget marks an entry whose target path is already taken by
// an earlier entry and deduplication is off.
var ErrDuplicateTarget = errors.New("duplicate target")

// Options controls planning and execution.
type Options struct {
	DefaultCategory naming.Category // For entries without a category.
	Dedupe          bool            // Suffix duplicate targets with " - dupN".
	Apply           bool            // Rename files; otherwise dry run.
	SkipExisting    bool            // Leave targets that already exist alone.
	Codes           naming.CodeSet  // Dictionary for diagnostics; may be nil.
}

// OptionsFromConfig builds Options from a validated Config.
func OptionsFromConfig(cfg *config.Config, codes naming.CodeSet) Options {
	return Options{
		DefaultCategory: naming.Category(cfg.DefaultCategory),
		Dedupe:          cfg.Dedupe,
		Apply:           cfg.Apply,
		SkipExisting:    cfg.SkipExisting,
		Codes:           codes,
	}
}

// Item is the planned outcome of one manifest entry.
type Item struct {
	Entry       Entry
	Category    naming.Category
	Name        string
	Target      string // Rename destination; empty for name-only entries.
	Diagnostics []naming.Diagnostic
	Err         error // Planning failure; the entry is not executed.
}

// Plan generates a name for every entry and resolves rename targets. The
// target keeps the source's extension. Targets claimed by an earlier entry
// get a " - dupN" suffix with opts.Dedupe, and fail otherwise.
func Plan(m *Manifest, opts Options) []Item {
	resolver := naming.NewCollisionResolver()
	items := make([]Item, 0, len(m.Entries))

	for _, e := range m.Entries {
		it := Item{Entry: e, Category: e.Category}
		if it.Category == "" {
			it.Category = opts.DefaultCategory
		}
		it.Name = naming.Generate(it.Category, e.Fields)
		it.Diagnostics = naming.Diagnose(it.Category, e.Fields, opts.Codes)

		if !it.Category.Valid() {
			it.Err = fmt.Errorf("%w: %q", naming.ErrUnknownCategory, string(it.Category))
			items = append(items, it)
			continue
		}

		if e.Source != "" && strings.ContainsAny(it.Name, `/\`) {
			it.Err = fmt.Errorf("name %q contains a path separator", it.Name)
			items = append(items, it)
			continue
		}

		if e.Source != "" {
			dir := e.OutDir
			if dir == "" {
				dir = filepath.Dir(e.Source)
			}
			ext := filepath.Ext(e.Source)
			requested := naming.OutputPath(dir, it.Name, ext)
			if !opts.Dedupe && resolver.Claimed(requested) {
				it.Err = fmt.Errorf("%w: %s", ErrDuplicateTarget, filepath.Base(requested))
			} else {
				it.Target = resolver.Resolve(strconv.Itoa(e.Index), dir, it.Name, ext)
			}
		}
		items = append(items, it)
	}
	return items
}
