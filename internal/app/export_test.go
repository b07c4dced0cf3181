package app

// ServeMetrics exposes serveMetrics for tests.
var ServeMetrics = serveMetrics
