// Package app wires the command line application for the library server.
package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/luminalib/luminalib/cmd/luminalib/app/options"
	"github.com/luminalib/luminalib/internal/library"
	"github.com/luminalib/luminalib/pkg/app"
)

// NewApp builds the library server application.
func NewApp() *app.App {
	opts := options.NewServerOptions()

	return app.NewApp(
		app.WithName(library.Name),
		app.WithShortDescription("LuminaLib library management backend"),
		app.WithDescription(`LuminaLib is a library management backend with catalog, borrowing,
reviews, document ingestion, retrieval-augmented question answering,
and book recommendations.`),
		app.WithOptions(opts),
		app.WithRunFunc(func() error {
			return run(opts)
		}),
	)
}

// run assembles the server from completed options and blocks until a
// termination signal arrives.
func run(opts *options.ServerOptions) error {
	cfg, err := opts.Config()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := cfg.NewServer(ctx)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
