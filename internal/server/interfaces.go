package server

// Server is returned by NewServer.
type Server interface {
	// RunServer blocks until a termination signal arrives and every
	// transport has stopped.
	RunServer()

	// Shutdown stops HTTP first, then marks health NOT_SERVING and drains
	// gRPC.
	Shutdown()
}
