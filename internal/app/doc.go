// Package app wires configuration, logging, tracing, upstream clients and the
// HTTP router into a runnable Application. Both the server binary and the
// studyctl CLI build on it.
package app
