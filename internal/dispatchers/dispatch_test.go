package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/usage"
)

func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

// createTestTree builds a small flat registry resembling the real one.
func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "lasif",
		Summary: "Large-scale seismic inversion framework workflow tool",
		Usage:   "lasif <command> [args]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--no-color"}, Description: "Disable colored output"},
		},
	})

	Command(CommandSpec{
		Name:    "info",
		Parent:  root,
		Summary: "Print information about the current project",
		Usage:   "lasif info",
		Action:  mockAction,
	})

	Command(CommandSpec{
		Name:    "plot_event",
		Parent:  root,
		Summary: "Plot one event",
		Usage:   "lasif plot_event EVENT_NAME",
		Args: []ArgSpec{
			{Name: "EVENT_NAME", Description: "Name of the event", Required: true},
		},
		Action: mockAction,
	})

	Command(CommandSpec{
		Name:    "plot_events",
		Parent:  root,
		Summary: "Plot all events",
		Usage:   "lasif plot_events",
		Action:  mockAction,
	})

	Command(CommandSpec{
		Name:    "download_waveforms",
		Parent:  root,
		Summary: "Download waveforms for one event",
		Usage:   "lasif download_waveforms EVENT_NAME",
		Args: []ArgSpec{
			{Name: "EVENT_NAME", Description: "Name of the event", Required: true},
		},
		Flags: []FlagDescriptor{
			{Names: []string{"--format"}, ValueHint: "<fmt>", Description: "Waveform format"},
		},
		Action: mockAction,
	})

	return root
}

func TestDispatch_SimpleCommand(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags(nil)

	res, err := Dispatch(root, []string{"info"}, flags)
	require.NoError(t, err)
	require.Equal(t, "info", res.Node.Name)
	require.NotNil(t, res.Execute)
	require.Empty(t, res.Args)
	require.Zero(t, res.ExitCode)
}

func TestDispatch_CommandWithArgs(t *testing.T) {
	root := createTestTree()
	flags := NewParsedFlags(nil)

	res, err := Dispatch(root, []string{"plot_event", "quake_1"}, flags)
	require.NoError(t, err)
	require.Equal(t, "plot_event", res.Node.Name)
	require.Equal(t, []string{"quake_1"}, res.Args)
}

func TestDispatch_EmptyTokensShowsUsageWithExit1(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, nil, NewParsedFlags(nil))
	require.NoError(t, err)
	require.NotNil(t, res.Execute)
	require.Equal(t, 1, res.ExitCode)
	require.Equal(t, root, res.Node)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"plot_evnt"}, NewParsedFlags(nil))
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.Equal(t, 1, ue.ExitCode())
	require.Contains(t, ue.Suggestions, "plot_event")
}

func TestDispatch_HelpTokenDoesNotInvokeHandler(t *testing.T) {
	root := createTestTree()

	invoked := false
	root.Children["plot_event"].Action = func(args []string, flags *ParsedFlags) error {
		invoked = true
		return nil
	}

	res, err := Dispatch(root, []string{"plot_event", "help"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Zero(t, res.ExitCode)
	require.NotNil(t, res.Execute)
	require.False(t, invoked, "resolving help must not run the handler")
}

func TestDispatch_HelpTokenOnlySpecialAsFirstRemainingArg(t *testing.T) {
	// A later token literally named "help" is an ordinary argument: it
	// does not trigger help and fails arg validation like any surplus.
	root := createTestTree()

	invoked := false
	root.Children["download_waveforms"].Action = func(args []string, flags *ParsedFlags) error {
		invoked = true
		return nil
	}

	_, err := Dispatch(root, []string{"download_waveforms", "quake_1", "help"}, NewParsedFlags(nil))
	require.Error(t, err)
	require.False(t, invoked)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrSurplusArgument, ue.Kind)
}

func TestDispatch_SurplusArgsRejected(t *testing.T) {
	root := createTestTree()

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "no-arg command", tokens: []string{"info", "extra"}, want: "extra"},
		{name: "one-arg command", tokens: []string{"plot_event", "quake_1", "quake_2"}, want: "quake_2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Dispatch(root, tt.tokens, NewParsedFlags(nil))
			require.Error(t, err)

			var ue *usage.Error
			require.ErrorAs(t, err, &ue)
			require.Equal(t, usage.ErrSurplusArgument, ue.Kind)
			require.Equal(t, 2, ue.ExitCode())
			require.Contains(t, ue.Error(), tt.want)
			require.Contains(t, ue.Error(), "No other arguments allowed.")
		})
	}
}

func TestDispatch_HelpPseudoCommand(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"help"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, root, res.Node)

	res, err = Dispatch(root, []string{"help", "plot_event"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, "plot_event", res.Node.Name)

	_, err = Dispatch(root, []string{"help", "nonsense"}, NewParsedFlags(nil))
	require.Error(t, err)
}

func TestDispatch_HelpFlag(t *testing.T) {
	root := createTestTree()

	tests := []struct {
		name   string
		tokens []string
		flags  []string
	}{
		{name: "--help on root", tokens: nil, flags: []string{"--help"}},
		{name: "-h on root", tokens: nil, flags: []string{"-h"}},
		{name: "--help on command", tokens: []string{"plot_event"}, flags: []string{"--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Dispatch(root, tt.tokens, NewParsedFlags(tt.flags))
			require.NoError(t, err)
			require.NotNil(t, res.Execute)
			require.Zero(t, res.ExitCode)
		})
	}
}

func TestDispatch_MissingRequiredArg(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"plot_event"}, NewParsedFlags(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "EVENT_NAME")

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, 2, ue.ExitCode())
}

func TestDispatch_FlagValidation(t *testing.T) {
	root := createTestTree()

	// Local flag accepted on its own command.
	_, err := Dispatch(root, []string{"download_waveforms", "quake_1"},
		NewParsedFlags([]string{"--format=mseed"}))
	require.NoError(t, err)

	// Unknown flag rejected.
	_, err = Dispatch(root, []string{"info"}, NewParsedFlags([]string{"--bogus"}))
	require.Error(t, err)

	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)

	// Global flag accepted everywhere.
	_, err = Dispatch(root, []string{"info"}, NewParsedFlags([]string{"--no-color"}))
	require.NoError(t, err)
}

func TestDispatch_RegistryIsDeterministic(t *testing.T) {
	a := createTestTree()
	b := createTestTree()

	require.Equal(t, len(a.Children), len(b.Children))
	for name := range a.Children {
		require.Contains(t, b.Children, name)
	}
}
