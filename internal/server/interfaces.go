package server

// Server defines the lifecycle contract of the transport server.
//
// RunServer blocks until a stop signal arrives or the listener fails.
type Server interface {
	RunServer()
	Shutdown()
}
