// Package monitor implements a line-oriented debug REPL over a
// running machine.Machine: register and memory inspection, single
// stepping, breakpoints and disk status. It is an observability hook
// only -- spec.md excludes a full debugger front end -- grounded on
// rcornwell-S370/command/reader and command/parser's liner-based
// prompt loop and prefix-matched command table.
package monitor

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/bdwalton/apple2emu/machine"
)

type command struct {
	name    string
	minLen  int
	process func(*Monitor, []string) (bool, error)
}

var commands = []command{
	{name: "step", minLen: 1, process: (*Monitor).cmdStep},
	{name: "continue", minLen: 1, process: (*Monitor).cmdContinue},
	{name: "registers", minLen: 1, process: (*Monitor).cmdRegisters},
	{name: "examine", minLen: 1, process: (*Monitor).cmdExamine},
	{name: "deposit", minLen: 1, process: (*Monitor).cmdDeposit},
	{name: "break", minLen: 2, process: (*Monitor).cmdBreak},
	{name: "unbreak", minLen: 3, process: (*Monitor).cmdUnbreak},
	{name: "disk", minLen: 1, process: (*Monitor).cmdDisk},
	{name: "reset", minLen: 2, process: (*Monitor).cmdReset},
	{name: "quit", minLen: 1, process: (*Monitor).cmdQuit},
}

// Monitor is a REPL bound to one machine.
type Monitor struct {
	m          *machine.Machine
	out        io.Writer
	breaks     map[uint16]bool
	quitSignal bool
}

// New returns a Monitor over m, writing command output to out.
func New(m *machine.Machine, out io.Writer) *Monitor {
	return &Monitor{m: m, out: out, breaks: make(map[uint16]bool)}
}

// Run drives the REPL against stdin/stdout via liner until the user
// quits or aborts with Ctrl-C/Ctrl-D.
func (mon *Monitor) Run() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completeCommand(partial)
	})

	for {
		text, err := line.Prompt("apple2emu> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		line.AppendHistory(text)

		quit, err := mon.Dispatch(text)
		if err != nil {
			fmt.Fprintln(mon.out, "error:", err)
		}
		if quit {
			return nil
		}
	}
}

// Dispatch parses and executes one command line, matching commands by
// unique prefix the way S370's parser does.
func (mon *Monitor) Dispatch(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	matches := matchCommand(fields[0])
	switch len(matches) {
	case 0:
		return false, fmt.Errorf("unknown command: %s", fields[0])
	case 1:
		return matches[0].process(mon, fields[1:])
	default:
		return false, fmt.Errorf("ambiguous command: %s", fields[0])
	}
}

func matchCommand(prefix string) []command {
	prefix = strings.ToLower(prefix)
	var out []command
	for _, c := range commands {
		if strings.HasPrefix(c.name, prefix) && len(prefix) >= c.minLen {
			out = append(out, c)
		}
	}
	return out
}

func completeCommand(partial string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c.name, strings.ToLower(partial)) {
			out = append(out, c.name)
		}
	}
	sort.Strings(out)
	return out
}

func parseHex16(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad hex address %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseHex8(s string) (uint8, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "$"), 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad hex byte %q: %w", s, err)
	}
	return uint8(v), nil
}
