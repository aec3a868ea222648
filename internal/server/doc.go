// Package server manages the lifecycle of the inbound HTTP transport:
// construction from configuration, startup, and graceful shutdown on
// SIGTERM/SIGINT/SIGQUIT.
package server
