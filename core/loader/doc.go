// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface and mounts its own routes.
// The Manager registers features and loads the enabled ones in order.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
