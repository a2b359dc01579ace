package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/spf13/cobra"
)

func init() {
	addKeyFlag(labelCmd)
	addVerbosityFlag(labelCmd)
	rootCmd.AddCommand(labelCmd)
}

var labelCmd = &cobra.Command{
	Use:     "label PITCH...",
	Short:   "Labels one chord",
	Long:    `Labels one chord given as pitch names in any order, e.g. "label -k F F3 A4 C5".`,
	Example: "  harmonfunc label C3 E4 G4\n  harmonfunc label -k c -v verbose E-3 C4 G4",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := keyFlag(cmd)
		if err != nil {
			return err
		}
		v, err := verbosityFlag(cmd)
		if err != nil {
			return err
		}
		pitches, err := pitch.ParseAll(args)
		if err != nil {
			return err
		}
		label, err := harmony.LabelChord(k, pitches, v.String())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}
