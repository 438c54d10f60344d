// Package findgames provides the search endpoint the finder page posts to: a
// small net/http handler that decodes SearchFilters, asks a recommender for
// games and answers with a JSON array of GameResult objects.
//
// Failures are reported as {"error": "..."} bodies with the status codes the
// finder controller understands.
package findgames
