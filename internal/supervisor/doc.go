// SwipeFlix - Swipe-Driven Hybrid Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swipeflix

/*
Package supervisor runs the long-lived parts of SwipeFlix under a suture v4
supervisor tree.

	swipeflix
	├── model-layer
	│   └── MaintenanceService (cache eviction, limiter cleanup, gauges)
	└── api-layer
	    └── HTTPServerService

Crashed services are restarted with backoff. Failures are counted per layer,
so a maintenance loop that keeps failing does not stop the HTTP server.
Supervisor events are logged through sutureslog into the zerolog pipeline
via logging.NewSlogLogger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    FailureThreshold: cfg.Supervisor.FailureThreshold,
	    FailureDecay:     cfg.Supervisor.FailureDecay,
	    FailureBackoff:   cfg.Supervisor.FailureBackoff,
	    ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	})
	tree.AddModelService(services.NewMaintenanceService(engine, throttle, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)

Service implementations live in the services subpackage.
*/
package supervisor
