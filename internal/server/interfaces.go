package server

// Server is the lifecycle contract of the API server.
//
// RunServer blocks serving requests until a stop signal arrives or Shutdown
// is called; Shutdown drains in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
