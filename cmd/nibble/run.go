package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/nibble/emulator"
	"github.com/ezrec/nibble/translate"
)

var runMaxTicks int

var runCmd = &cobra.Command{
	Use:   "run sourceFile",
	Short: "Assemble and emulate a source file",
	Long: `Run assembles exactly one source file, loads it at address 0 of the
16 byte memory, and executes it until HLT. The final machine state and
memory are printed.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return
		}
		if cmd.Flags().Changed("max-ticks") {
			cfg.MaxTicks = runMaxTicks
		}

		prog, err := assembleFile(args[0], cfg)
		if err != nil {
			return
		}

		emu := emulator.NewEmulator()
		emu.Program = prog
		emu.Verbose = cfg.Verbose

		err = emu.Reset()
		if err != nil {
			return
		}

		err = emu.Run(cfg.MaxTicks)
		if err != nil {
			return
		}

		out := cmd.OutOrStdout()
		err = translate.Fprintln(out, "halted after %d instructions", emu.Ticks)
		if err != nil {
			return
		}

		_, err = fmt.Fprintf(out, "%v\n% X\n", emu, emu.Memory[:])
		return
	},
}

func init() {
	runCmd.Flags().IntVar(&runMaxTicks, "max-ticks", 0, "Instruction limit, 0 for unlimited")

	rootCmd.AddCommand(runCmd)
}
