// Package linecount wires configuration, object storage and the line counter into
// one run, and exposes that run on the command line and over HTTP.
//
// # Runner
//
// A Runner executes a single count as a sequence of phases:
//
//	Idle -> Configuring -> Opening -> Counting -> Reporting -> Done
//
// Any phase can end in Failed. The object stream is closed on every path and no
// count is reported unless the whole object was read. Failures are returned as
// *RunError carrying the phase and the display location of the object; the
// credentials never appear in it. Runners do not retry, that is the job of the
// storage reader underneath.
//
// # Reporting
//
// BannerReporter prints the classic three line banner:
//
//	==========================================
//	Line count: 3
//	==========================================
//
// JSONReporter prints {"location","lines","bytes","duration_ms"}.
//
// # HTTP Endpoints
//
//   - GET /count : Counts the configured object, or ?key=... in the configured bucket.
//
// Concurrent requests for the same key share one count.
package linecount
