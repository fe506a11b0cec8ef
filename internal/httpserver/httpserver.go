package httpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Run maps the handlers, starts the HTTP server and blocks until a shutdown
// signal arrives. In-flight runs finish on their own; durable ledger and
// audit state makes interrupted runs safe to re-trigger.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.logger.Fatalf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go func() {
		if err := srv.gin.Run(fmt.Sprintf(":%d", srv.port)); err != nil {
			srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()

	srv.logger.Infof(ctx, "HTTP server started on port: %d", srv.port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	srv.logger.Info(ctx, <-ch)
	srv.logger.Info(ctx, "Stopping alert service...")

	if err := srv.mailer.Close(); err != nil {
		srv.logger.Errorf(ctx, "Mailer shutdown error: %v", err)
	}
	if srv.discord != nil {
		if err := srv.discord.Close(); err != nil {
			srv.logger.Errorf(ctx, "Discord shutdown error: %v", err)
		}
	}

	return nil
}
