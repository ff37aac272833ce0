package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mdwlog "github.com/vcglab/vcgc/foundation/core/log"
	"github.com/vcglab/vcgc/internal/vcg/vcgconfig"
)

var (
	cfgFile string
	verbose bool

	compilerOptions vcgconfig.CompilerOptions
)

var rootCmd = &cobra.Command{
	Use:   "vcgc",
	Short: "vcgc - compiler front end for the VCG voice-command grammar language",
	Long: `vcgc reads .vcg grammar sources and compiles them into hierarchical
rule trees ready to be handed to a speech-recognition grammar backend.

It runs the tokenizer, parser and rule builder described by the VCG
language and can either report the compiled result or surface the
lexical/compile error (lex errors name the line and column; most compile
errors name the line).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		opts, err := vcgconfig.Load(cfgFile)
		if err != nil {
			return err
		}
		compilerOptions = opts

		level := opts.LogLevel
		if verbose {
			level = "debug"
		}
		if parsed, err := mdwlog.ParseLevel(level); err == nil {
			mdwlog.GetDefault().SetLevel(parsed)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a vcgc.toml/vcgc.yaml config file (default: discovered from . and ./config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
