// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(run runFunc) *cobra.Command {
	var (
		addr      string
		tempDir   string
		logLevel  string
		maxUpload int64
	)

	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Serve an upload form and a mixing endpoint over HTTP",
		Long: `Serves the mixer over HTTP.

  GET  /          upload form
  POST /overlay/  multipart speech_file and music_file plus mix settings;
                  answers with the mixed file as an attachment

The listen port defaults to $PORT, or 8080.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return serve(ctx, ln, newHandler(run, log, tempDir, maxUpload), log)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&addr, "addr", ":"+cmp.Or(os.Getenv("PORT"), "8080"), "Listen address")
	flags.StringVar(&tempDir, "temp-dir", os.TempDir(), "Directory for uploads and results while a request runs")
	flags.Int64Var(&maxUpload, "max-upload", DefaultMaxUpload, "Largest accepted request body in bytes")
	flags.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// serve answers on ln until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, ln net.Listener, h http.Handler, log *zap.Logger) error {
	server := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		log.Info("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sctx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("listening", zap.String("addr", ln.Addr().String()))
	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	<-done

	return nil
}
