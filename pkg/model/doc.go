// Package model defines the records exchanged between the finder page, the
// search endpoint and the recommender: the SearchFilters payload built from
// the form on every submission, the GameResult records rendered as cards, and
// the Catalog of option labels the page renders as button groups.
//
// SearchFilters list fields always encode as JSON arrays, never null, so the
// endpoint sees the same shape whether or not a group has active buttons.
// GameResult.GameID accepts both JSON strings and numbers because
// recommenders are free to emit numeric identifiers.
package model
