package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joestump/restful-notes/internal/api"
	"github.com/joestump/restful-notes/internal/build"
	"github.com/joestump/restful-notes/internal/resource"
	"github.com/joestump/restful-notes/internal/store"
	"github.com/joestump/restful-notes/internal/validation"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, database, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			svc := resource.NewService(store.NewNoteStore(database), store.NewTagStore(database), validation.New())

			router := api.NewRouter(api.Deps{
				Service:     svc,
				BaseURL:     cfg.HTTP.BaseURL,
				Logger:      l,
				CORSOrigins: cfg.HTTP.CORSOrigins,
			})

			srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				l.Info().
					Str("addr", cfg.HTTP.Addr).
					Str("version", build.String()).
					Str("driver", cfg.DB.Driver).
					Msg("listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			l.Info().Dur("timeout", cfg.HTTP.ShutdownTimeout).Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
