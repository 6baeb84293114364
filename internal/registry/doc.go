package registry

// Package registry holds the in-memory book registry: an ordered list of books
// plus a maintained count. Books are identified by exact title; borrow and
// return always act on the first match in insertion order. The registry is
// owned by the UI event loop and is not safe for concurrent use.
