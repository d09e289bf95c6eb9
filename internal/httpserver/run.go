package httpserver

import "fmt"

// Run maps all routes and starts listening. Blocks until the server
// stops.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
