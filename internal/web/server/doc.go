// Package server manages the demo distributor's HTTP lifecycle with
// graceful shutdown.
//
// It wraps [net/http.Server] and handles OS signal interception (SIGINT,
// SIGTERM), in-flight request draining, and ordered cleanup of external
// resources.
//
// Basic usage:
//
//	srv := server.New(app, server.WithHost(":9999"))
//	if err := srv.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// Registering shutdown hooks:
//
//	srv := server.New(app,
//		server.WithShutdownFunc(func(ctx context.Context) error {
//			return store.Close()
//		}),
//	)
package server
