package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/harmonfunc/analysis"
	"github.com/jsphweid/harmonfunc/annotate"
	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/midi"
	"github.com/spf13/cobra"
)

func init() {
	addKeyFlag(annotateCmd)
	addVerbosityFlag(annotateCmd)
	annotateCmd.Flags().StringP("out", "o", "", "output file (default $OUT_PATH/<name>.labeled.mid)")
	rootCmd.AddCommand(annotateCmd)
}

var annotateCmd = &cobra.Command{
	Use:   "annotate FILE",
	Short: "Writes chord labels into a MIDI file",
	Long:  `Labels every chord of a MIDI file and writes a copy with the labels as lyrics on an extra track.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := keyFlag(cmd)
		if err != nil {
			return err
		}
		v, err := verbosityFlag(cmd)
		if err != nil {
			return err
		}

		mf, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		a, err := analysis.AnalyzeSMF(cmd.Context(), mf, k, args[0], uuid.NewString(), constants.GetWorkers())
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = labeledPath(constants.GetOutDir(), args[0])
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
		}
		if err := annotate.WriteFile(out, mf, a.Chords, v); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %v chords to %v\n", len(a.Chords), out)
		return nil
	},
}

func labeledPath(dir, src string) string {
	base := filepath.Base(src)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".labeled.mid")
}
