package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/lasif-tools/cli/internal/actions"
	"github.com/lasif-tools/cli/internal/app"
	"github.com/lasif-tools/cli/internal/cli"
	"github.com/lasif-tools/cli/internal/dispatchers"
	"github.com/lasif-tools/cli/internal/ui"
	"github.com/lasif-tools/cli/internal/ui/style"
	"github.com/lasif-tools/cli/internal/usage"
)

// valueFlags take a value, either as --flag=value or as --flag value.
// The space-separated form is normalized to the equals form before
// parsing.
var valueFlags = map[string]bool{
	"--pager":    true,
	"--provider": true,
}

func main() {
	rawFlags, commands := extractFlagsAndCommands(os.Args[1:])
	flags := dispatchers.NewParsedFlags(rawFlags)

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	style.Init(enableColor)

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		fmt.Printf("%s version %v\n", app.Name, app.Version)
		return
	}

	application := app.New(app.Options{
		PagerDisabled: flags.Has("--no-pager"),
		PagerOverride: flags.String("--pager", ""),
		StyleEnabled:  enableColor,
	})
	actions.Configure(application)

	code := run(cli.BuildTree(), commands, flags, os.Stderr)

	application.Close()
	if code != 0 {
		os.Exit(code)
	}
}

// run dispatches the tokens, executes the resolved command, and turns
// every error into an exit code. It is the binary's only error boundary:
// dispatcher errors render with suggestions and the command overview,
// handler failures render in red followed by the command's help.
func run(root *dispatchers.DispatchNode, commands []string, flags *dispatchers.ParsedFlags, errOut io.Writer) int {
	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) {
			fmt.Fprintln(errOut, style.Error(ue.Error()))
			for _, s := range ue.Suggestions {
				fmt.Fprintf(errOut, "Did you mean %q?\n", s)
			}
			if ue.Kind == usage.ErrUnknownCommand {
				fmt.Fprintln(errOut)
				fmt.Fprint(errOut, dispatchers.GenericUsage(root))
			}
			return ue.ExitCode()
		}
		fmt.Fprintln(errOut, err.Error())
		return 1
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		var ce *usage.CommandError
		if errors.As(err, &ce) {
			fmt.Fprintln(errOut, style.Error(ce.Error()))
			if res.Node != nil && res.Node != root {
				fmt.Fprintln(errOut)
				fmt.Fprint(errOut, dispatchers.RenderHelp(res.Node, root))
			}
		} else {
			fmt.Fprintln(errOut, err.Error())
		}
		return 1
	}

	return res.ExitCode
}

// extractFlagsAndCommands splits argv into flag tokens and command
// tokens. Flags may appear anywhere. A value flag followed by a
// non-flag token consumes that token as its value.
func extractFlagsAndCommands(args []string) ([]string, []string) {
	flags := []string{}
	commands := []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if len(a) == 0 || a[0] != '-' {
			commands = append(commands, a)
			continue
		}

		if valueFlags[a] && i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}
