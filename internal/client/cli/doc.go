// Package cli provides the interactive TTIO portal command-line client.
//
// It wires configuration, the local session database, the chosen backend
// (self-hosted gRPC or the hosted provider) and the login and signup
// workflows behind a small REPL. A background watcher pings the backend and
// shows whether it is reachable.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
