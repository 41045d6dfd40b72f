// listsh reads list commands from stdin or a script file and applies
// them to a singly or doubly linked list.
package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"deedles.dev/linked/internal/shell"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func run() int {
	f, err := parseArgs(os.Args)
	if err != nil {
		logrus.Error(err)
		return 2
	}

	c, err := shell.LoadConfig(f.ConfigPath)
	if err != nil {
		logrus.Error(err)
		return 1
	}
	err = f.merge(&c)
	if err != nil {
		logrus.Error(err)
		return 2
	}

	log, err := shell.NewLogger(c.LogLevel, os.Stderr)
	if err != nil {
		logrus.Error(err)
		return 1
	}

	var in io.Reader = os.Stdin
	prompt := isTerminal(os.Stdin)
	if f.Script != "" {
		file, err := os.Open(f.Script)
		if err != nil {
			log.Error(err)
			return 1
		}
		defer file.Close()
		in = file
		prompt = false
	}

	sh := shell.Shell{
		List:   shell.NewList(c),
		Out:    os.Stdout,
		Log:    log,
		Prompt: prompt,
		Color:  c.Color && isTerminal(os.Stdout),
	}

	log.WithFields(logrus.Fields{
		"kind":  c.Kind,
		"limit": c.Limit,
	}).Info("starting list shell")

	err = sh.Run(in)
	if err != nil {
		log.Error(err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
