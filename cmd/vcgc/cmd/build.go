package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	mdwlog "github.com/vcglab/vcgc/foundation/core/log"
	"github.com/vcglab/vcgc/internal/vcg/parser"
)

var buildCmd = &cobra.Command{
	Use:   "build <path>",
	Short: "Compile a .vcg source file and print its imports and rules",
	Long: `build reads a single .vcg file (or, given a directory, every .vcg
file directly under it) and runs the tokenizer, parser and rule builder
over its contents. On success it prints the resolved imports and the
stringified rule tree for every rule; on failure it prints the
lex/compile error and exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := mdwlog.GetDefault().WithField("component", "vcgc-build")

	files, err := sourceFiles(args[0])
	if err != nil {
		printError("resolving path", err)
		return err
	}

	for _, path := range files {
		if err := buildOne(logger, path); err != nil {
			return err
		}
	}
	return nil
}

func sourceFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".vcg") {
			continue
		}
		files = append(files, filepath.Join(root, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func buildOne(logger *mdwlog.Logger, path string) error {
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

	logger.Debug("compiling source", mdwlog.Fields{"path": path, "bytes": len(source)})

	p := parser.New(parser.Options{
		Logger:      logger,
		PackagePath: filepath.Dir(path),
		FileName:    filepath.Base(path),
	})

	module, err := p.Compile(string(source))
	if err != nil {
		logger.Warn("compile failed", mdwlog.Fields{"path": path, "error": err.Error()})
		printError(fmt.Sprintf("compiling %s", path), err)
		return err
	}

	fmt.Printf("%s\n", path)
	fmt.Print(module.String())
	return nil
}
