package cmd

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

var sentryEnabled bool

var rootCmd = &cobra.Command{
	Use:   "harmonfunc",
	Short: "Labels chords by harmonic function",
	Long: `Labels chords with their harmonic functions (tonic, subdominant, dominant)
and the role each voice plays, e.g. T(1) or D^T(5).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func setup() {
	if !constants.LoadEnv() {
		logger.Debug("No .env file found, using environment variables", nil)
	}
	logger.SetLevel(logger.ParseLevel(constants.GetLogLevel()))

	dsn := constants.GetSentryDSN()
	if dsn == "" {
		return
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: constants.GetEnvironment(),
	})
	if err != nil {
		log.Printf("Failed to initialize Sentry: %v", err)
		return
	}
	sentryEnabled = true
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if sentryEnabled {
		sentry.Flush(sentryFlushTimeout)
	}
	cobra.CheckErr(err)
}
