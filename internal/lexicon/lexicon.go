// Package lexicon holds the reference dictionaries (technology, product,
// scene and platform codes) offered for the selection fields.
//
// The built-in dictionaries are embedded from lexicon.yaml. A user file in
// the same format replaces every domain it defines and leaves the others
// untouched.
package lexicon

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var builtin []byte

// Domain names one dictionary.
type Domain string

const (
	DomainTechnology Domain = "technology"
	DomainProduct    Domain = "product"
	DomainScene      Domain = "scene"
	DomainPlatform   Domain = "platform"
)

// Domains lists every domain in display order.
var Domains = []Domain{DomainTechnology, DomainProduct, DomainScene, DomainPlatform}

// ErrUnknownDomain is returned for a domain name outside [Domains].
var ErrUnknownDomain = errors.New("unknown lexicon domain")

// Option is one selectable code.
type Option struct {
	Code        string `yaml:"code"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Lexicon maps each domain to its ordered options. The zero value is empty
// and usable.
type Lexicon struct {
	domains map[Domain][]Option
}

// file mirrors lexicon.yaml. Pointers distinguish "absent" from "empty".
type file struct {
	Technology *[]Option `yaml:"technology"`
	Product    *[]Option `yaml:"product"`
	Scene      *[]Option `yaml:"scene"`
	Platform   *[]Option `yaml:"platform"`
}

// Default returns the built-in dictionaries.
func Default() (*Lexicon, error) {
	l, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("parse built-in lexicon: %w", err)
	}
	return l, nil
}

// Parse decodes a dictionary document. Domains absent from data are left
// unset.
func Parse(data []byte) (*Lexicon, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	l := &Lexicon{domains: make(map[Domain][]Option)}
	for d, opts := range map[Domain]*[]Option{
		DomainTechnology: f.Technology,
		DomainProduct:    f.Product,
		DomainScene:      f.Scene,
		DomainPlatform:   f.Platform,
	} {
		if opts == nil {
			continue
		}
		if err := validate(d, *opts); err != nil {
			return nil, err
		}
		l.domains[d] = *opts
	}
	return l, nil
}

// LoadFile reads the built-in dictionaries and applies the overrides in
// path. An empty path returns the built-ins unchanged.
func LoadFile(path string) (*Lexicon, error) {
	l, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return l, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	l.Merge(override)
	return l, nil
}

// Merge replaces each domain of l that other defines.
func (l *Lexicon) Merge(other *Lexicon) {
	if l.domains == nil {
		l.domains = make(map[Domain][]Option)
	}
	for d, opts := range other.domains {
		l.domains[d] = opts
	}
}

// Options returns the options of domain d in display order.
func (l *Lexicon) Options(d Domain) ([]Option, error) {
	if !d.valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownDomain, string(d))
	}
	return l.domains[d], nil
}

// Has reports whether code is an option of domain. Codes are matched
// exactly ("iPH" is not "IPH"). It satisfies naming.CodeSet.
func (l *Lexicon) Has(domain, code string) bool {
	for _, o := range l.domains[Domain(domain)] {
		if o.Code == code {
			return true
		}
	}
	return false
}

// ParseDomain resolves a domain name case-insensitively.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	if !d.valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownDomain, s)
	}
	return d, nil
}

func (d Domain) valid() bool {
	for _, known := range Domains {
		if d == known {
			return true
		}
	}
	return false
}

func validate(d Domain, opts []Option) error {
	seen := make(map[string]bool, len(opts))
	for i, o := range opts {
		if strings.TrimSpace(o.Code) == "" {
			return fmt.Errorf("%s option %d: empty code", d, i+1)
		}
		if seen[o.Code] {
			return fmt.Errorf("%s option %d: duplicate code %q", d, i+1, o.Code)
		}
		seen[o.Code] = true
	}
	return nil
}
