// Package cli provides the interactive users console.
//
// It wires configuration, logging, session storage, the REST client, the
// services and the two stores, restores the saved session and runs a REPL.
// The REPL is the view: it reads store state, renders it and turns commands
// into store intents. It never changes state directly.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
