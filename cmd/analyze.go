package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonfunc/analysis"
	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/db"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/logger"
	"github.com/jsphweid/harmonfunc/model"
	"github.com/jsphweid/harmonfunc/util"
	"github.com/spf13/cobra"
)

func init() {
	addKeyFlag(analyzeCmd)
	addVerbosityFlag(analyzeCmd)
	analyzeCmd.Flags().IntP("workers", "w", 0, "chords labeled in parallel (default $ANALYSIS_WORKERS or 4)")
	analyzeCmd.Flags().Bool("store", false, "save each analysis to DynamoDB")
	analyzeCmd.Flags().Int("max", 0, "analyse at most this many files of a directory (0 is all)")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [PATH]",
	Short: "Labels every chord of MIDI files",
	Long: `Labels every vertical slice of a MIDI file, or of every MIDI file under a
directory. PATH defaults to $MEDIA_PATH.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := keyFlag(cmd)
		if err != nil {
			return err
		}
		v, err := verbosityFlag(cmd)
		if err != nil {
			return err
		}
		workers, _ := cmd.Flags().GetInt("workers")
		if workers < 1 {
			workers = constants.GetWorkers()
		}
		maxNum, _ := cmd.Flags().GetInt("max")

		path := constants.GetMediaDir()
		if len(args) == 1 {
			path = args[0]
		}
		paths, err := midiPaths(path, maxNum)
		if err != nil {
			return err
		}

		var store *db.Store
		if doStore, _ := cmd.Flags().GetBool("store"); doStore {
			store, err = db.NewStoreFromEnv()
			if err != nil {
				return err
			}
		}

		runID := uuid.NewString()
		logger.Info("Starting analysis run", logger.Fields{"run_id": runID, "files": len(paths), "key": k.String()})

		var failed int
		for _, p := range paths {
			a, err := analysis.AnalyzeFile(cmd.Context(), p, k, runID, workers)
			if err != nil {
				failed++
				logger.Error("Could not analyse file", err, logger.Fields{"path": p, "run_id": runID})
				continue
			}
			printAnalysis(cmd.OutOrStdout(), a, v)
			if store != nil {
				if err := store.PutAnalysis(a); err != nil {
					return err
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be analysed", failed, len(paths))
		}
		return nil
	},
}

// midiPaths is path itself for a file, or the MIDI files under it for a directory.
func midiPaths(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return util.GatherAllMidiPaths(path, maxNum)
}

func printAnalysis(w io.Writer, a model.Analysis, v harmony.Verbosity) {
	fmt.Fprintf(w, "%v (%v, %v chords)\n", a.Source, a.Key, len(a.Chords))
	for _, c := range a.Chords {
		label := c.Label
		if v == harmony.Verbose {
			label = c.VerboseLabel
		}
		fmt.Fprintf(w, "%10.3f  %-20v %v\n", c.Offset, fmt.Sprint(c.Pitches), label)
	}
}
