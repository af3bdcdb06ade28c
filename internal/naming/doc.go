// Package naming builds canonical asset filenames.
//
// Data flows leaf-first:
//
//	FieldSet ──Normalize──► Tokens ──Rules[category].Build──► filename
//
// Types:
//   - FieldSet: every user input, shared by all categories.
//   - Category: closed set of nine grammars (ihp, pcc, micro, selects,
//     screenshot, stock, ai, vo, audio_assets).
//   - Rule: one grammar, with its label, display group and the fields its
//     active branch reads.
//
// Functions:
//   - Generate(category, fields) → string. Total: empty fields become
//     placeholder tokens, unknown categories yield ConfigurationError.
//   - Diagnose(category, fields, codes) → []Diagnostic for placeholder
//     substitution, over-width numbers and unknown dictionary codes.
//   - PadNumeric, FormatPersonName, FormatKeywordSlug, FormatYearMonth,
//     FormatFullDate, FormatPlatform: the field normalizer.
//   - OutputPath and CollisionResolver turn names into unique target paths
//     for batch renames.
//
// Nothing in this package performs I/O or keeps state between calls,
// except CollisionResolver which is scoped to one batch.
package naming
