// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary lifecycle of loading a frame,
// resolving its pass schedule, and executing it, decoupled from any specific
// entrypoint like a CLI.
package app
