package shell

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"

	"deedles.dev/linked"
)

func run(t *testing.T, sh *Shell, script string) string {
	t.Helper()
	var out strings.Builder
	sh.Out = &out
	assert.NilError(t, sh.Run(strings.NewReader(script)))
	return out.String()
}

const scenario = `
# the same steps against either kind
front 10
front 20
front 30
print
back 40
back 50
insert 2 25
print
search 25
search 100
popfront
popback
print
len
`

func TestRunDouble(t *testing.T) {
	log, _ := test.NewNullLogger()
	sh := Shell{List: new(linked.Double), Log: log}
	out := run(t, &sh, scenario+"reverse\n")

	expected := strings.Join([]string{
		"List: NULL <- 30 <-> 20 <-> 10 -> NULL",
		"Size: 3",
		"List: NULL <- 30 <-> 20 <-> 25 <-> 10 <-> 40 <-> 50 -> NULL",
		"Size: 6",
		"2",
		"-1",
		"30",
		"50",
		"List: NULL <- 20 <-> 25 <-> 10 <-> 40 -> NULL",
		"Size: 4",
		"4",
		"List: NULL <- 40 <-> 10 <-> 25 <-> 20 -> NULL",
		"",
	}, "\n")
	assert.Equal(t, out, expected)
}

func TestRunSingle(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	sh := Shell{List: new(linked.Single), Log: log}
	out := run(t, &sh, scenario+"reverse\n")

	expected := strings.Join([]string{
		"List: 30 -> 20 -> 10 -> NULL",
		"Size: 3",
		"List: 30 -> 20 -> 25 -> 10 -> 40 -> 50 -> NULL",
		"Size: 6",
		"2",
		"-1",
		"30",
		"50",
		"List: 20 -> 25 -> 10 -> 40 -> NULL",
		"Size: 4",
		"4",
		"error: reverse requires a double list",
		"",
	}, "\n")
	assert.Equal(t, out, expected)

	assert.Equal(t, len(hook.AllEntries()), 1)
	entry := hook.LastEntry()
	assert.Equal(t, entry.Level, logrus.DebugLevel)
	assert.Equal(t, entry.Data["cmd"], "reverse")
	assert.Equal(t, entry.Data["line"], 17)
}

func TestRunErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	sh := Shell{List: new(linked.Double), Log: log}
	out := run(t, &sh, strings.Join([]string{
		"popfront",
		"popback extra",
		"bogus",
		"insert 1 5",
		"insert x 5",
		"delete 0",
		"get -1",
		"len",
	}, "\n"))

	expected := strings.Join([]string{
		"error: delete front: list is empty",
		"error: usage: popback",
		`error: unknown command "bogus", try help`,
		"error: insert at 1 with length 0: invalid index",
		"error: I: x is not an integer",
		"error: delete at 0 with length 0: invalid index",
		"error: get at -1 with length 0: invalid index",
		"0",
		"",
	}, "\n")
	assert.Equal(t, out, expected)
	assert.Equal(t, len(hook.AllEntries()), 7)
}

func TestRunLimit(t *testing.T) {
	c := DefaultConfig()
	c.Kind = KindSingle
	c.Limit = 2
	log, _ := test.NewNullLogger()
	sh := Shell{List: NewList(c), Log: log}

	out := run(t, &sh, "back 1\nback 2\nback 3\nprint\nclear\nback 3\nprint\n")
	assert.Check(t, is.Contains(out, "error: insert 3: node allocation failed"))
	assert.Check(t, is.Contains(out, "List: 1 -> 2 -> NULL\nSize: 2"))
	assert.Check(t, is.Contains(out, "List: 3 -> NULL\nSize: 1"))
}

func TestRunQuit(t *testing.T) {
	for _, cmd := range []string{"quit", "exit", "QUIT"} {
		sh := Shell{List: new(linked.Double)}
		out := run(t, &sh, "back 1\n"+cmd+"\nprint\n")
		assert.Equal(t, out, "")
		assert.Equal(t, sh.List.Len(), 1)
	}
}

func TestRunPrompt(t *testing.T) {
	sh := Shell{List: new(linked.Double), Prompt: true}
	out := run(t, &sh, "len\n")
	assert.Equal(t, out, "> 0\n> ")
}

func TestHelp(t *testing.T) {
	var sh Shell
	out, err := sh.Exec("help")
	assert.NilError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, len(lines), len(commands)-1)
	assert.Check(t, is.Contains(out, "insert I V"))
	assert.Check(t, !strings.Contains(out, "exit"))
}
