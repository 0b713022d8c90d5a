package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/usage"
)

func TestExtractFlagsAndCommands(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantFlags    []string
		wantCommands []string
	}{
		{
			name:         "no flags or commands",
			args:         []string{},
			wantFlags:    []string{},
			wantCommands: []string{},
		},
		{
			name:         "only commands",
			args:         []string{"list_events"},
			wantFlags:    []string{},
			wantCommands: []string{"list_events"},
		},
		{
			name:         "boolean flags",
			args:         []string{"--help", "-h", "--no-color"},
			wantFlags:    []string{"--help", "-h", "--no-color"},
			wantCommands: []string{},
		},
		{
			name:         "pager with space-separated value",
			args:         []string{"--pager", "less"},
			wantFlags:    []string{"--pager=less"},
			wantCommands: []string{},
		},
		{
			name:         "pager with equals",
			args:         []string{"--pager=less"},
			wantFlags:    []string{"--pager=less"},
			wantCommands: []string{},
		},
		{
			name:         "pager without value",
			args:         []string{"--pager"},
			wantFlags:    []string{"--pager"},
			wantCommands: []string{},
		},
		{
			name:         "provider with space-separated value",
			args:         []string{"download_waveforms", "event_1", "--provider", "http://example.org"},
			wantFlags:    []string{"--provider=http://example.org"},
			wantCommands: []string{"download_waveforms", "event_1"},
		},
		{
			name:         "value flag followed by another flag",
			args:         []string{"--pager", "--no-color", "info"},
			wantFlags:    []string{"--pager", "--no-color"},
			wantCommands: []string{"info"},
		},
		{
			name:         "flags interleaved with commands",
			args:         []string{"event_info", "--no-pager", "dummy_event_1"},
			wantFlags:    []string{"--no-pager"},
			wantCommands: []string{"event_info", "dummy_event_1"},
		},
		{
			name:         "help after command",
			args:         []string{"download_waveforms", "help"},
			wantFlags:    []string{},
			wantCommands: []string{"download_waveforms", "help"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFlags, gotCommands := extractFlagsAndCommands(tt.args)

			if !reflect.DeepEqual(gotFlags, tt.wantFlags) {
				t.Errorf("extractFlagsAndCommands() flags = %v, want %v", gotFlags, tt.wantFlags)
			}
			if !reflect.DeepEqual(gotCommands, tt.wantCommands) {
				t.Errorf("extractFlagsAndCommands() commands = %v, want %v", gotCommands, tt.wantCommands)
			}
		})
	}
}

// runTestTree builds a minimal registry for exercising the error
// boundary without touching the real actions.
func runTestTree(action dispatchers.CommandFunc) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "lasif",
		Summary: "test tool",
		Usage:   "lasif <command> [args]",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
		},
	})
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "plot_event",
		Parent:  root,
		Summary: "Plot one event",
		Usage:   "lasif plot_event EVENT_NAME",
		Args: []dispatchers.ArgSpec{
			{Name: "EVENT_NAME", Description: "Name of the event", Required: true},
		},
		Action: action,
	})
	return root
}

func TestRunRendersCommandErrorWithHelp(t *testing.T) {
	root := runTestTree(func(args []string, flags *dispatchers.ParsedFlags) error {
		return usage.Commandf("Event '%s' not found.", args[0])
	})
	var stderr bytes.Buffer

	code := run(root, []string{"plot_event", "quake_1"}, dispatchers.NewParsedFlags(nil), &stderr)

	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	out := stderr.String()
	msgIdx := strings.Index(out, "Event 'quake_1' not found.")
	helpIdx := strings.Index(out, "lasif plot_event EVENT_NAME")
	if msgIdx == -1 {
		t.Fatalf("stderr misses the handler message:\n%s", out)
	}
	if helpIdx == -1 {
		t.Fatalf("stderr misses the command help:\n%s", out)
	}
	if msgIdx > helpIdx {
		t.Errorf("message must precede the help text:\n%s", out)
	}
}

func TestRunPlainErrorsSkipHelp(t *testing.T) {
	root := runTestTree(func(args []string, flags *dispatchers.ParsedFlags) error {
		return errors.New("disk full")
	})
	var stderr bytes.Buffer

	code := run(root, []string{"plot_event", "quake_1"}, dispatchers.NewParsedFlags(nil), &stderr)

	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "disk full") {
		t.Errorf("stderr misses the error message:\n%s", stderr.String())
	}
	if strings.Contains(stderr.String(), "USAGE") {
		t.Errorf("plain errors must not render command help:\n%s", stderr.String())
	}
}

func TestRunUnknownCommand(t *testing.T) {
	root := runTestTree(func(args []string, flags *dispatchers.ParsedFlags) error { return nil })
	var stderr bytes.Buffer

	code := run(root, []string{"plot_evnt"}, dispatchers.NewParsedFlags(nil), &stderr)

	if code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	out := stderr.String()
	if !strings.Contains(out, "'plot_evnt' is not a lasif command.") {
		t.Errorf("stderr misses the unknown-command message:\n%s", out)
	}
	if !strings.Contains(out, `Did you mean "plot_event"?`) {
		t.Errorf("stderr misses the suggestion:\n%s", out)
	}
	if !strings.Contains(out, "Available commands:") {
		t.Errorf("stderr misses the command overview:\n%s", out)
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		flags  []string
		want   int
	}{
		{name: "success", tokens: []string{"plot_event", "quake_1"}, want: 0},
		{name: "no tokens", tokens: nil, want: 1},
		{name: "missing argument", tokens: []string{"plot_event"}, want: 2},
		{name: "surplus argument", tokens: []string{"plot_event", "a", "b"}, want: 2},
		{name: "invalid flag", tokens: []string{"plot_event", "quake_1"}, flags: []string{"--bogus"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := runTestTree(func(args []string, flags *dispatchers.ParsedFlags) error { return nil })
			var stderr bytes.Buffer

			code := run(root, tt.tokens, dispatchers.NewParsedFlags(tt.flags), &stderr)
			if code != tt.want {
				t.Errorf("run() = %d, want %d\nstderr:\n%s", code, tt.want, stderr.String())
			}
		})
	}
}
