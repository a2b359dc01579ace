package cmd

import (
	"fmt"

	"github.com/jsphweid/harmonfunc/constants"
	"github.com/jsphweid/harmonfunc/harmony"
	"github.com/jsphweid/harmonfunc/pitch"
	"github.com/spf13/cobra"
)

func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("key", "k", "", `key to analyse in, e.g. "E-" or "f#" for minor (default $DEFAULT_KEY or C)`)
}

func addVerbosityFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("verbosity", "v", "", "concise or verbose (default $DEFAULT_VERBOSITY or concise)")
}

func keyFlag(cmd *cobra.Command) (pitch.Key, error) {
	name, _ := cmd.Flags().GetString("key")
	if name == "" {
		name = constants.GetDefaultKey()
	}
	k, err := pitch.ParseKey(name)
	if err != nil {
		return pitch.Key{}, fmt.Errorf("%w: bad key %q", harmony.ErrNonsensicalInput, name)
	}
	return k, nil
}

func verbosityFlag(cmd *cobra.Command) (harmony.Verbosity, error) {
	name, _ := cmd.Flags().GetString("verbosity")
	if name == "" {
		name = constants.GetDefaultVerbosity()
	}
	return harmony.ParseVerbosity(name)
}
