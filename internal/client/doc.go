// Package client implements the interactive client application runtime.
//
// It wires the line-mode screens, the session service, and the background
// expense refresh job into a single process lifecycle. Screen transitions
// are driven exclusively by navigation intents emitted by the session
// service; the screens themselves never change the route directly.
package client
