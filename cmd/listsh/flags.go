package main

import (
	"flag"

	"github.com/pkg/errors"

	"deedles.dev/linked/internal/shell"
)

// Flags holds CLI arguments for listsh.
type Flags struct {
	ConfigPath string
	Kind       string
	Limit      int
	Verbose    bool
	NoColor    bool

	// Script is a file to read commands from instead of stdin.
	Script string

	set map[string]bool
}

func defineFlags(fs *flag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML config file")
	fs.StringVar(&f.Kind, "kind", shell.KindDouble, "list kind, single or double")
	fs.IntVar(&f.Limit, "limit", 0, "maximum number of elements, 0 for no limit")
	fs.BoolVar(&f.Verbose, "v", false, "log at debug level")
	fs.BoolVar(&f.NoColor, "no-color", false, "disable styled output")
}

// parseArgs defines and parses the flags from the command line. args
// includes the program name.
func parseArgs(args []string) (*Flags, error) {
	f := new(Flags)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	defineFlags(fs, f)

	err := fs.Parse(args[1:])
	if err != nil {
		return nil, err
	}
	if fs.NArg() > 1 {
		return nil, errors.Errorf("expected at most one script file, got %d", fs.NArg())
	}
	f.Script = fs.Arg(0)

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// merge overrides c with every flag that was given explicitly.
func (f *Flags) merge(c *shell.Config) error {
	if f.set["kind"] {
		c.Kind = f.Kind
	}
	if f.set["limit"] {
		c.Limit = f.Limit
	}
	if f.Verbose {
		c.LogLevel = "debug"
	}
	if f.NoColor {
		c.Color = false
	}
	return c.Validate()
}
