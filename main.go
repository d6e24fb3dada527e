// Package main implements a CLI tool to bump the patch version stored in a
// JSON manifest and print the new version.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	modbump "github.com/bcomnes/modbump/pkg"
)

// exitFailure is the only non-zero exit code the tool uses.
const exitFailure = 2

func usage(w io.Writer, flags *flag.FlagSet) {
	msg := `Usage:
  modbump [options] [path]

Increments the patch component of the "version" field in a JSON file (default: ` + modbump.DefaultPath + `),
rewrites the file with two space indentation, and prints the new version.

Examples:
  modbump
  modbump Mods/OtherMod/modinfo.json
  modbump -dry package.json

Positional arguments:
  [path]     JSON file containing a "version" field of the form major.minor.patch

Options:
`
	fmt.Fprint(w, msg)
	flags.SetOutput(w)
	flags.PrintDefaults()
	flags.SetOutput(io.Discard)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("modbump", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	dryRun := flags.Bool("dry", false, "Print the version that would be written without modifying the file")
	verbose := flags.Bool("verbose", false, "Log each step to stderr")
	showVersion := flags.Bool("version", false, "Show CLI version and exit")
	help := flags.Bool("help", false, "Show help message and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout, flags)
			return 0
		}
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitFailure
	}

	if *help {
		usage(stdout, flags)
		return 0
	}
	if *showVersion {
		fmt.Fprintln(stdout, "modbump CLI version", Version)
		return 0
	}

	// Guard against misplaced flags after the positional argument. A "--"
	// consumed by flag.Parse marks everything after it as a path.
	consumed := len(args) - flags.NArg()
	terminated := consumed > 0 && args[consumed-1] == "--"
	if !terminated {
		for _, arg := range flags.Args() {
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintln(stderr, "ERROR: flags must be specified before the path")
				return exitFailure
			}
		}
	}

	path := modbump.DefaultPath
	switch rest := flags.Args(); len(rest) {
	case 0:
	case 1:
		path = rest[0]
	default:
		fmt.Fprintf(stderr, "ERROR: expected at most one path, got %d\n", len(rest))
		return exitFailure
	}

	logger := log.NewWithOptions(stderr, log.Options{
		Level:  log.WarnLevel,
		Prefix: "modbump",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	modbump.SetLogger(logger)

	var meta modbump.VersionMeta
	var err error
	if *dryRun {
		meta, err = modbump.DryRun(path)
	} else {
		meta, err = modbump.Run(path)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitFailure
	}

	if *dryRun {
		logger.Info("dry run complete, no files were modified", "path", meta.Path, "old", meta.OldVersion)
	}
	fmt.Fprintln(stdout, meta.NewVersion)
	return 0
}
