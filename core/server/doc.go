// Package server holds the HTTP API configuration.
//
// The serve command builds the Fiber application from it: the listen port and the
// optional API key that protects every route except the health check.
package server
