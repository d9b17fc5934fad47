// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/nibble/config"
	"github.com/ezrec/nibble/cpu"
)

var configFile string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nibble",
	Short: "Assembler and emulator for the nibble 4-bit CPU",
	Long: `Nibble assembles source for a CPU with 4-bit opcodes and 4-bit
operands into 8-bit machine words, and can run the result.

Settings are read from a Starlark file, nibble.star in the current
directory by default. Command line flags override the file.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Starlark settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// loadConfig loads the settings file, then applies the persistent flags.
func loadConfig(cmd *cobra.Command) (cfg config.Config, err error) {
	cfg, err = config.Load(configFile)
	if err != nil {
		return
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	return
}

// assembleFile assembles a source file.
func assembleFile(filename string, cfg config.Config) (prog *cpu.Program, err error) {
	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: cfg.Verbose}
	return asm.Parse(inf)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("nibble: ")

	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
