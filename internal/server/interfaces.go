package server

// Server runs the inbound transport of the service.
type Server interface {
	// RunServer blocks until the server terminates.
	RunServer()
	// Shutdown stops the server gracefully.
	Shutdown()
}
