package main

import (
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
)

var asmLabels bool
var asmHeader string
var asmDump bool
var asmOutput string

var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file",
	Long: `Asm assembles exactly one source file. By default the machine words
are printed as hexadecimal, one per line, below a header line. With -o the
raw words are written to a binary file instead.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return
		}
		if cmd.Flags().Changed("labels") {
			cfg.Labels = asmLabels
		}
		if cmd.Flags().Changed("header") {
			cfg.Header = asmHeader
		}

		prog, err := assembleFile(args[0], cfg)
		if err != nil {
			return
		}

		if asmDump {
			_, err = pp.Fprintln(cmd.ErrOrStderr(), prog)
			if err != nil {
				return
			}
		}

		if len(asmOutput) != 0 {
			return os.WriteFile(asmOutput, prog.Binary(), 0o644)
		}

		out := cmd.OutOrStdout()
		err = prog.WriteHex(out, cfg.Header)
		if err != nil {
			return
		}

		if cfg.Labels {
			err = prog.WriteLabels(out)
		}

		return
	},
}

func init() {
	asmCmd.Flags().BoolVarP(&asmLabels, "labels", "l", false, "Print the label table")
	asmCmd.Flags().StringVar(&asmHeader, "header", "", "Header line above the listing")
	asmCmd.Flags().BoolVar(&asmDump, "dump", false, "Dump the assembled program to stderr")
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "", "Binary output file")

	rootCmd.AddCommand(asmCmd)
}
