// Package recommend turns SearchFilters into game suggestions by prompting a
// Gemini model.
//
// API keys are rotated round-robin through a KeyRing. The model output is
// expected to be a bare JSON array of GameResult objects; markdown code
// fences are stripped and text fields are reduced to plain text before the
// results are returned.
package recommend
