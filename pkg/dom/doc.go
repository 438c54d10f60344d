// Package dom provides the small slice of a browser document model the game
// finder controller works against: elements with attributes, class lists and
// data attributes, bubbling events, and HTML parsing/serialisation backed by
// golang.org/x/net/html.
//
// Handles are plain *Element pointers so components receive the nodes they
// own explicitly instead of looking them up through globals. The model is not
// safe for concurrent mutation; every page instance is owned by one event
// loop (one HTTP request, one terminal session, one test).
package dom
