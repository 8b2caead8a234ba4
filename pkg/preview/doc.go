// Package preview serves rendered documents over HTTP for local
// inspection.
//
// A Server maps URL paths to page functions that build a document
// tree on every request. The tree is rendered with pkg/render and
// written as text/html, so edits to page code show up on the next
// refresh. With live reload enabled the server injects a small
// client script that reconnects over WebSocket and reloads the page
// when NotifyChanged is called.
//
// The server is instrumented: request metrics are exported in
// Prometheus format on /metrics, and each page render runs inside an
// OpenTelemetry span when a tracer provider is configured.
package preview
