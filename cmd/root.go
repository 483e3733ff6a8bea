// Package cmd wires the geckoasm Program Driver: a cobra root command
// that encodes a compiled-in patch program to the chosen envelope, plus
// an "inspect" subcommand that browses one in a read-only TUI.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yonder-tools/geckoasm/config"
	"github.com/yonder-tools/geckoasm/envelope"
	"github.com/yonder-tools/geckoasm/pass"
)

// Version, Commit, and Date are set from main before Execute runs.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var (
	outfile    *onceString
	codefmt    *onceString
	assumeYes  bool
	abiName    string
	programArg string
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cfg, _ := config.Load()

	outfile = newOnceString("o", "")
	codefmt = newOnceString("c", cfg.Output.Format)

	root := &cobra.Command{
		Use:     "geckoasm",
		Short:   "Assemble Gecko/GCT patch codes from a compiled-in program",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date),
		RunE:    runEncode,
		Args:    cobra.NoArgs,
	}

	root.Flags().VarP(outfile, "outfile", "o", "output file path (required)")
	root.Flags().VarP(codefmt, "codefmt", "c", "output format: dolphin, gct, ocarina, raw, rawtext")
	root.Flags().BoolVarP(&assumeYes, "yes", "y", false, "don't prompt for confirmation before writing")
	root.Flags().StringVar(&abiName, "abi", cfg.ABI.Preset, "code handler ABI preset: primitive, codehandler")
	root.Flags().StringVar(&programArg, "program", "demo", "compiled-in program to assemble")

	_ = root.MarkFlagRequired("outfile")

	root.AddCommand(newInspectCmd())

	return root
}

func runEncode(cmd *cobra.Command, args []string) error {
	format := envelope.Format(codefmt.String())
	switch format {
	case envelope.FormatDolphin, envelope.FormatGCT, envelope.FormatOcarina, envelope.FormatRaw, envelope.FormatRawText:
	default:
		return fmt.Errorf("invalid value for 'c' option: %q", codefmt.String())
	}

	abi, err := resolveABI(abiName)
	if err != nil {
		return err
	}

	rp, err := lookupProgram(programArg)
	if err != nil {
		return err
	}

	cfg, _ := config.Load()
	author := rp.Author
	if author == "" {
		author = cfg.Code.Author
	}

	if !assumeYes {
		fmt.Fprintf(os.Stderr, "About to write %q (%s) to %s\n", rp.Name, format, outfile.String())
		fmt.Fprint(os.Stderr, "Press any key to continue . . . ")
		reader := bufio.NewReader(os.Stdin)
		_, _ = reader.ReadByte()
		fmt.Fprintln(os.Stderr)
	}

	openFlags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	f, err := os.OpenFile(outfile.String(), openFlags, 0644) // #nosec G304 -- user-supplied output path
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()

	ctx := pass.NewContext(abi)
	hdr := envelope.Header{Name: rp.Name, Author: author}
	if err := envelope.Write(f, format, hdr, ctx, rp.Program); err != nil {
		return fmt.Errorf("encoding %s: %w", rp.Name, err)
	}

	return nil
}

func resolveABI(name string) (pass.ABI, error) {
	switch name {
	case "primitive", "":
		return pass.ABIPrimitive, nil
	case "codehandler":
		return pass.ABICodeHandlerCompat, nil
	default:
		return pass.ABI{}, fmt.Errorf("unknown ABI preset %q", name)
	}
}
