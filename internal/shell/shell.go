// Package shell implements a line-oriented command interpreter that
// drives a single list from the linked package.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"deedles.dev/linked"
)

// List is the set of operations shared by [linked.Single] and
// [linked.Double].
type List interface {
	InsertFront(v int) error
	InsertBack(v int) error
	InsertAt(i, v int) error
	DeleteFront() (int, error)
	DeleteBack() (int, error)
	DeleteAt(i int) (int, error)
	Search(v int) int
	At(i int) (int, error)
	Len() int
	Release()
	String() string
}

var (
	_ List = (*linked.Single)(nil)
	_ List = (*linked.Double)(nil)
)

type reverser interface {
	ReverseString() string
}

var errQuit = errors.New("quit")

// Shell reads commands one per line and applies them to List. Blank
// lines and lines starting with # are skipped.
type Shell struct {
	List List
	Out  io.Writer

	// Log receives command failures at debug level. If nil, the
	// logrus standard logger is used.
	Log logrus.FieldLogger

	// Prompt causes a prompt to be written before each line is read.
	Prompt bool

	// Color enables styled output.
	Color bool
}

type command struct {
	args  []string
	help  string
	run   func(s *Shell, args []int) (string, error)
	value bool
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"front": {
			args: []string{"V"},
			help: "insert V at the front",
			run: func(s *Shell, args []int) (string, error) {
				return "", s.List.InsertFront(args[0])
			},
		},
		"back": {
			args: []string{"V"},
			help: "insert V at the back",
			run: func(s *Shell, args []int) (string, error) {
				return "", s.List.InsertBack(args[0])
			},
		},
		"insert": {
			args: []string{"I", "V"},
			help: "insert V at index I",
			run: func(s *Shell, args []int) (string, error) {
				return "", s.List.InsertAt(args[0], args[1])
			},
		},
		"popfront": {
			help:  "remove the front element",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return itoa(s.List.DeleteFront())
			},
		},
		"popback": {
			help:  "remove the back element",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return itoa(s.List.DeleteBack())
			},
		},
		"delete": {
			args:  []string{"I"},
			help:  "remove the element at index I",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return itoa(s.List.DeleteAt(args[0]))
			},
		},
		"get": {
			args:  []string{"I"},
			help:  "show the element at index I",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return itoa(s.List.At(args[0]))
			},
		},
		"search": {
			args:  []string{"V"},
			help:  "show the index of the first V, or -1",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return strconv.Itoa(s.List.Search(args[0])), nil
			},
		},
		"len": {
			help:  "show the number of elements",
			value: true,
			run: func(s *Shell, args []int) (string, error) {
				return strconv.Itoa(s.List.Len()), nil
			},
		},
		"print": {
			help: "show the list and its size",
			run: func(s *Shell, args []int) (string, error) {
				return fmt.Sprintf("List: %v\nSize: %d", s.styled(listStyle, s.List.String()), s.List.Len()), nil
			},
		},
		"reverse": {
			help: "show the list from back to front (double only)",
			run: func(s *Shell, args []int) (string, error) {
				r, ok := s.List.(reverser)
				if !ok {
					return "", errors.New("reverse requires a double list")
				}
				return fmt.Sprintf("List: %v", s.styled(listStyle, r.ReverseString())), nil
			},
		},
		"clear": {
			help: "remove every element",
			run: func(s *Shell, args []int) (string, error) {
				s.List.Release()
				return "", nil
			},
		},
		"help": {
			help: "show this list of commands",
			run: func(s *Shell, args []int) (string, error) {
				return usage(), nil
			},
		},
		"quit": {
			help: "stop reading commands",
			run: func(s *Shell, args []int) (string, error) {
				return "", errQuit
			},
		},
	}
	commands["exit"] = commands["quit"]
}

func itoa(v int, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

func usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		if name != "exit" {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var buf strings.Builder
	for i, name := range names {
		cmd := commands[name]
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%-14v %v", strings.Join(append([]string{name}, cmd.args...), " "), cmd.help)
	}
	return buf.String()
}

func (s *Shell) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Exec runs a single command line and returns its output. A failed
// command leaves the list as it was.
func (s *Shell) Exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := commands[name]
	if !ok {
		return "", errors.Errorf("unknown command %q, try help", fields[0])
	}
	if len(fields)-1 != len(cmd.args) {
		return "", errors.Errorf("usage: %v", strings.Join(append([]string{name}, cmd.args...), " "))
	}

	args := make([]int, len(cmd.args))
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return "", errors.Errorf("%v: %v is not an integer", cmd.args[i], f)
		}
		args[i] = v
	}

	out, err := cmd.run(s, args)
	if err != nil {
		return "", err
	}
	if cmd.value {
		out = s.styled(valueStyle, out)
	}
	return out, nil
}

// Run executes commands from r until r is exhausted or a quit command
// is read. Failed commands are reported to Out and do not stop the
// shell. The only errors returned are those from reading r.
func (s *Shell) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	var lineno int
	for {
		if s.Prompt {
			fmt.Fprint(s.Out, s.styled(promptStyle, "> "))
		}
		if !sc.Scan() {
			break
		}
		lineno++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := s.Exec(line)
		if err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}

			s.logger().WithFields(logrus.Fields{
				"cmd":  line,
				"line": lineno,
			}).WithError(err).Debug("command failed")
			fmt.Fprintln(s.Out, s.styled(errorStyle, "error: "+err.Error()))
			continue
		}

		if out != "" {
			fmt.Fprintln(s.Out, out)
		}
	}

	return errors.Wrap(sc.Err(), "read commands")
}
