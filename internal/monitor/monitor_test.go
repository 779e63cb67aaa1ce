package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bdwalton/apple2emu/cpu"
	"github.com/bdwalton/apple2emu/machine"
)

func newTestMonitor() (*Monitor, *bytes.Buffer) {
	m := machine.New(cpu.NMOS)
	rom := make([]byte, 12*1024)
	rom[0xFFFC-0xD000] = 0x00
	rom[0xFFFD-0xD000] = 0xD0
	rom[0] = 0xEA // NOP at $D000
	m.LoadROM(rom)
	m.Reset()

	var buf bytes.Buffer
	return New(m, &buf), &buf
}

func TestRegistersCommand(t *testing.T) {
	mon, buf := newTestMonitor()
	if _, err := mon.Dispatch("registers"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "PC=$d000") {
		t.Errorf("output = %q, want PC=$d000", buf.String())
	}
}

func TestStepAdvancesPC(t *testing.T) {
	mon, _ := newTestMonitor()
	if _, err := mon.Dispatch("step"); err != nil {
		t.Fatal(err)
	}
	if mon.m.CPU.PC != 0xD001 {
		t.Errorf("PC after step = 0x%04x, want 0xd001", mon.m.CPU.PC)
	}
}

func TestExamineAndDeposit(t *testing.T) {
	mon, buf := newTestMonitor()
	if _, err := mon.Dispatch("deposit 2000 42"); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if _, err := mon.Dispatch("examine 2000"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "$2000: $42") {
		t.Errorf("output = %q, want $2000: $42", buf.String())
	}
}

func TestBreakpointStopsStep(t *testing.T) {
	mon, buf := newTestMonitor()
	if _, err := mon.Dispatch("break d001"); err != nil {
		t.Fatal(err)
	}
	if _, err := mon.Dispatch("step 5"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "breakpoint hit") {
		t.Errorf("output = %q, want a breakpoint hit message", buf.String())
	}
}

func TestAmbiguousCommandErrors(t *testing.T) {
	mon, _ := newTestMonitor()
	// "d" alone matches both "deposit" and "disk".
	if _, err := mon.Dispatch("d"); err == nil {
		t.Fatal("expected an ambiguous-command error")
	}
}

func TestQuitReturnsTrue(t *testing.T) {
	mon, _ := newTestMonitor()
	quit, err := mon.Dispatch("quit")
	if err != nil {
		t.Fatal(err)
	}
	if !quit {
		t.Errorf("expected quit to return true")
	}
}
