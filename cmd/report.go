package cmd

import (
	"github.com/jsphweid/harmonfunc/db"
	"github.com/jsphweid/harmonfunc/report"
	"github.com/spf13/cobra"
)

func init() {
	reportCmd.Flags().String("run", "", "only analyses from this run ID")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarises stored analyses",
	Long:  `Reads stored analyses from DynamoDB and prints label counts and the spread of functions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.NewStoreFromEnv()
		if err != nil {
			return err
		}
		runID, _ := cmd.Flags().GetString("run")
		analyses, err := store.ScanAnalyses(runID)
		if err != nil {
			return err
		}
		report.Summarize(analyses).Write(cmd.OutOrStdout())
		return nil
	},
}
