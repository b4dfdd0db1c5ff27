// Package app wires configuration, logging, and the assembler into a
// runnable application with a two-phase bootstrap: construct and register
// everything first, then assemble and block until shutdown.
package app
