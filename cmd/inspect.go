package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/harmonfunc/degree"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/spf13/cobra"
)

func init() {
	addKeyFlag(inspectCmd)
	inspectCmd.Flags().StringP("position", "p", "", "lowest, middle, highest or solo (default all)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect DEGREE|PITCH",
	Short: "Inspects the candidates of a scale degree",
	Long: `Prints every candidate function a scale degree (e.g. "-3") or pitch (e.g. "E-")
may take in each voice position, with the conditions that must hold.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := keyFlag(cmd)
		if err != nil {
			return err
		}

		positions := []harmony.VoicePosition{harmony.Lowest, harmony.Middle, harmony.Highest, harmony.Solo}
		if name, _ := cmd.Flags().GetString("position"); name != "" {
			pos, err := harmony.ParseVoicePosition(name)
			if err != nil {
				return err
			}
			positions = []harmony.VoicePosition{pos}
		}

		inspect(cmd.OutOrStdout(), k, resolveDegree(k, args[0]), positions)
		return nil
	},
}

// resolveDegree reads a pitch name as its degree in k; anything else is taken as a
// degree already.
func resolveDegree(k pitch.Key, arg string) string {
	if p, err := pitch.Parse(arg); err == nil {
		return degree.Of(k, p)
	}
	return arg
}

func inspect(w io.Writer, k pitch.Key, deg string, positions []harmony.VoicePosition) {
	fmt.Fprintf(w, "degree %q in %v\n", deg, k)
	for _, pos := range positions {
		cands := harmony.Candidates(k, deg, pos)
		fmt.Fprintf(w, "%v:\n", pos)
		if len(cands) == 0 {
			fmt.Fprintln(w, "  (none)")
		}
		for _, c := range cands {
			fmt.Fprintf(w, "  %v\n", c)
		}
	}
}
