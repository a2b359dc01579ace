package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/db"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/jsphweid/harmonfunc/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default $HARMONFUNC_ADDR or :8080)")
	serveCmd.Flags().Bool("store", false, "allow POST /analyze?store=true to save to DynamoDB")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the labelling API",
	Long:  `Serves POST /label, POST /analyze and GET /health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = constants.GetAddr()
		}

		cfg := server.Config{
			DefaultKey:       constants.GetDefaultKey(),
			DefaultVerbosity: constants.GetDefaultVerbosity(),
			Workers:          constants.GetWorkers(),
		}
		if doStore, _ := cmd.Flags().GetBool("store"); doStore {
			store, err := db.NewStoreFromEnv()
			if err != nil {
				return err
			}
			cfg.Store = store
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           server.NewRouter(cfg),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errs := make(chan error, 1)
		go func() {
			logger.Info("Server listening", logger.Fields{"addr": addr})
			errs <- srv.ListenAndServe()
		}()

		select {
		case err := <-errs:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("Server stopped", nil)
		return nil
	},
}
