package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/tuning"
)

func newTuningCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuning",
		Short: "Inspect and validate gameplay tuning",
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective tuning as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := a.tuning.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}

	check := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a tuning file against the schema and ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := tuning.Load(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(dump, check)
	return cmd
}
