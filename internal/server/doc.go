// Package server runs the todo API over HTTP and, when an address is
// configured, the gRPC health service next to it. Both stop together on
// SIGTERM, SIGINT or SIGQUIT.
package server
