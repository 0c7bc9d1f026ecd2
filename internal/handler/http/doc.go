// Package http implements the REST transport of the todo service.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: trace ids, access logging, bearer authentication and the
// admin gate. Every error leaves this package as {"kind", "message"}.
package http
