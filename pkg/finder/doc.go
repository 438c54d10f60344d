// Package finder implements the game finder form controller.
//
// A Controller receives explicit element handles (Elements), renders the
// genre, device, mechanic and vibe option groups, binds the solo/group
// toggle and listens for the form's submit event. Each submission moves
// through Idle -> Submitting -> Succeeded|Failed -> Idle: the loading
// indicator is shown and the submit button disabled, exactly one JSON POST is
// sent to the search endpoint, results or an error message are rendered, and
// a deferred finalizer restores the idle page on every path.
//
// There is no retry, caching, timeout or cancellation beyond what the
// caller's context and HTTP client impose.
package finder
