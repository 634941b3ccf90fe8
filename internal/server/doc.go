// Package server exposes the warden's admin HTTP API and runs its lifecycle.
//
// The API reports the managed database's state and resolved batches and
// triggers upgrade, cleanup, backup, and restore operations. The package
// also handles startup, signal handling, and graceful shutdown.
package server
