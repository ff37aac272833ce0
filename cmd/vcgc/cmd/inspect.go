package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/vcglab/vcgc/foundation/core/log"
	"github.com/vcglab/vcgc/internal/tui/inspector"
	"github.com/vcglab/vcgc/internal/vcg/parser"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Compile a .vcg file and browse its rule trees interactively",
	Long: `inspect compiles a single .vcg file and opens a terminal browser
over the resulting rule tree map: select a rule on the left to see its
stringified HierarchicalNode tree on the right. It performs no grammar
evaluation - it is a read-only view of what the parser produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	sessionID := uuid.New().String()
	inspector.ApplyColorProfile(compilerOptions.ColorProfile)

	logger := mdwlog.GetDefault().WithField("component", "vcgc-inspect").WithCorrelationID(sessionID)

	source, err := os.ReadFile(path)
	if err != nil {
		printError("reading source", err)
		return err
	}
	if max := compilerOptions.MaxSourceBytes; max > 0 && len(source) > max {
		err := fmt.Errorf("%s is %d bytes, exceeds configured max_source_bytes %d", path, len(source), max)
		printError("reading source", err)
		return err
	}

	p := parser.New(parser.Options{
		Logger:      logger,
		PackagePath: filepath.Dir(path),
		FileName:    filepath.Base(path),
	})

	module, err := p.Compile(string(source))
	if err != nil {
		printError("compiling "+path, err)
		return err
	}

	return inspector.Run(module, sessionID, logger)
}
