// Package cli implements the interactive casefile client: a REPL over the
// session controller, the case services and the chat connection manager.
package cli
