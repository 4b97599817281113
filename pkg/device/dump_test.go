package device

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/devicelab-dev/droidview/pkg/core"
)

// fakeExecutor returns canned output instead of spawning processes.
type fakeExecutor struct {
	output string
	raw    []byte
	err    error
	calls  [][]string
}

func (f *fakeExecutor) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.output, f.err
}

func (f *fakeExecutor) RunRaw(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	return f.raw, f.err
}

const dumpOutput = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<hierarchy rotation="0">
  <node text="Hello" class="android.widget.TextView" bounds="[0,50][1080,150]" clickable="false" enabled="true"/>
</hierarchy>
UI hierchary dumped to: /dev/tty`

func TestDumpHierarchy(t *testing.T) {
	fake := &fakeExecutor{output: dumpOutput}
	d := NewWithExecutor("emulator-5554", "adb", fake)

	forest, err := d.DumpHierarchy(context.Background())
	if err != nil {
		t.Fatalf("DumpHierarchy failed: %v", err)
	}
	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	if forest[0].Text != "Hello" {
		t.Errorf("root text = %q, want %q", forest[0].Text, "Hello")
	}
	if forest[0].Bounds != (core.Bounds{X: 0, Y: 50, Width: 1080, Height: 100}) {
		t.Errorf("root bounds = %+v", forest[0].Bounds)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 command, got %d", len(fake.calls))
	}
	got := strings.Join(fake.calls[0], " ")
	want := "adb -s emulator-5554 exec-out uiautomator dump /dev/tty"
	if got != want {
		t.Errorf("command = %q, want %q", got, want)
	}
}

func TestDumpHierarchyUnexpectedOutput(t *testing.T) {
	fake := &fakeExecutor{output: "ERROR: could not get idle state\n"}
	d := NewWithExecutor("emulator-5554", "adb", fake)

	_, err := d.DumpHierarchy(context.Background())
	if err == nil {
		t.Fatal("expected error for output without <hierarchy")
	}
	if !errors.Is(err, core.ErrUnexpectedOutput) {
		t.Errorf("expected ErrUnexpectedOutput, got %v", err)
	}
	if !strings.Contains(err.Error(), "could not get idle state") {
		t.Errorf("error should carry the offending excerpt: %v", err)
	}
}

func TestDumpHierarchyExcerptBounded(t *testing.T) {
	fake := &fakeExecutor{output: strings.Repeat("x", 5000)}
	d := NewWithExecutor("emulator-5554", "adb", fake)

	_, err := d.DumpHierarchy(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Error()) > 300 {
		t.Errorf("diagnostic excerpt should be bounded, got %d chars", len(err.Error()))
	}
}

func TestDumpHierarchyCommandFailure(t *testing.T) {
	cmdErr := errors.New("device offline")
	fake := &fakeExecutor{err: cmdErr}
	d := NewWithExecutor("emulator-5554", "adb", fake)

	_, err := d.DumpHierarchy(context.Background())
	if !errors.Is(err, cmdErr) {
		t.Errorf("collaborator failure should propagate unchanged, got %v", err)
	}
}

func TestCleanDumpOutput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"correct spelling", "<hierarchy/>\nUI hierarchy dumped to: /sdcard/x.xml", "<hierarchy/>"},
		{"device misspelling", "<hierarchy/>\nUI hierchary dumped to: /dev/tty", "<hierarchy/>"},
		{"case insensitive", "<hierarchy/>\nui HIERARCHY DUMPED TO: /dev/tty", "<hierarchy/>"},
		{"no trailer", "<hierarchy/>", "<hierarchy/>"},
		{"surrounding whitespace", "  <hierarchy/>  \n", "<hierarchy/>"},
	}

	for _, tt := range tests {
		if got := CleanDumpOutput(tt.input); got != tt.want {
			t.Errorf("%s: CleanDumpOutput = %q, want %q", tt.name, got, tt.want)
		}
	}
}
