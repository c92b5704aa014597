// Package analysis implements the emoji analysis pipeline over a combined
// messages file: load and filter, extract emoji characters, expand to
// per-occurrence records, and compute the statistics behind each report view.
// The stages run strictly in order; each consumes the previous stage's
// output in full.
package analysis
