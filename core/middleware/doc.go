// Package middleware groups the Fiber middleware used by the serve command.
//
// rayid tags each request with an X-Ray-ID (reusing the caller's when present).
// auth rejects requests whose X-API-Key does not match server.api_key; with no key
// configured it lets everything through. The serve command mounts rayid first and
// auth after the public /health route.
package middleware
