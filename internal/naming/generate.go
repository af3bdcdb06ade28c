package naming

// ConfigurationError is returned by [Generate] for a category outside the
// rule table, so callers always have something to render.
const ConfigurationError = "Configuration Error"

// Generate builds the canonical filename for category c from fields f.
// It is total: empty fields become placeholder tokens and an unknown
// category yields [ConfigurationError].
func Generate(c Category, f FieldSet) string {
	rule, ok := lookupRule(c)
	if !ok {
		return ConfigurationError
	}
	return rule.Build(Normalize(f), f)
}

// Fields returns the inputs the grammar branch selected by f reads for
// category c, in form order. Nil for an unknown category.
func Fields(c Category, f FieldSet) []Field {
	rule, ok := lookupRule(c)
	if !ok {
		return nil
	}
	return rule.Fields(f)
}
