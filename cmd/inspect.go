package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yonder-tools/geckoasm/inspector"
)

func newInspectCmd() *cobra.Command {
	var abi string

	c := &cobra.Command{
		Use:   "inspect <program>",
		Short: "Browse a compiled-in program's resolved line table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rp, err := lookupProgram(args[0])
			if err != nil {
				return err
			}
			resolvedABI, err := resolveABI(abi)
			if err != nil {
				return err
			}
			lines, err := inspector.Capture(resolvedABI, rp.Program)
			if err != nil {
				return fmt.Errorf("resolving %s: %w", rp.Name, err)
			}
			return inspector.Run(lines)
		},
	}

	c.Flags().StringVar(&abi, "abi", "primitive", "code handler ABI preset: primitive, codehandler")

	return c
}
