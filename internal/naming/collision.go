package naming

import (
	"fmt"
	"sync"
)

// CollisionResolver tracks target paths claimed by batch entries and
// resolves duplicates by appending " - dupN" to the generated name. The
// extension is passed separately because generated names contain dots
// ("2024.03_...", "(03.05.24)") that filepath.Ext would misread.
// All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // target path → owner that claimed it
	counters map[string]int    // requested target path → next dup counter
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the final target path for owner. If dir/name+ext is
// unclaimed (or already owned by owner) it is returned as-is; otherwise a
// " - dupN" variant is generated.
func (cr *CollisionResolver) Resolve(owner, dir, name, ext string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	requested := OutputPath(dir, name, ext)
	current, exists := cr.owners[requested]
	if !exists || current == owner {
		cr.owners[requested] = owner
		return requested
	}

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}

	for {
		candidate := OutputPath(dir, fmt.Sprintf("%s - dup%d", name, counter), ext)
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == owner {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = owner
			return candidate
		}
		counter++
	}
}

// Claimed reports whether path has already been handed out.
func (cr *CollisionResolver) Claimed(path string) bool {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	_, ok := cr.owners[path]
	return ok
}
