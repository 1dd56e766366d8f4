package failable

// Exported for testing only. These symbols are only available during tests
// and do not pollute the public API.

// Raise exposes the shared raise primitive for boundary tests.
var Raise = raise
