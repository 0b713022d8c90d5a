package dispatchers

import (
	"strings"

	"github.com/lasif-tools/cli/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch resolves a token sequence against the registry.
//
// Rules, in order:
//   - no tokens: generic usage, exit code 1
//   - "help [command]": help for the command (or the root overview), exit 0
//   - unknown command: usage.UnknownCommand with suggestions
//   - "<command> help": help for the command, exit 0, the handler is NOT
//     invoked. Only the literal first remaining token counts; a later
//     token that happens to be "help" is validated like any other argument.
//   - otherwise: validate flags and argument count (missing and surplus
//     both fail), then hand the tokens to the command's action.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if len(tokens) == 0 {
		if hasHelpFlag(flags) {
			return Resolution{Node: root, Flags: flags, Execute: HelpAction(root, root)}, nil
		}
		return Resolution{
			Node:     root,
			Flags:    flags,
			Execute:  GenericUsageAction(root),
			ExitCode: 1,
		}, nil
	}

	if tokens[0] == "help" {
		return resolveHelp(root, tokens[1:], flags)
	}

	node, ok := root.Children[tokens[0]]
	if !ok {
		suggestions := FindSimilarCommands(tokens[0], root, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(tokens[0], suggestions...)
	}

	rest := tokens[1:]

	if len(rest) > 0 && rest[0] == "help" {
		return Resolution{Node: node, Flags: flags, Execute: HelpAction(node, root)}, nil
	}

	if hasHelpFlag(flags) {
		return Resolution{Node: node, Flags: flags, Execute: HelpAction(node, root)}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(node, root)); err != nil {
		return Resolution{}, err
	}

	if err := validateArgs(node.Args, rest); err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Node:    node,
		Args:    rest,
		Flags:   flags,
		Execute: node.Action,
	}, nil
}

// resolveHelp handles the "help [command]" pseudo command.
func resolveHelp(root *DispatchNode, target []string, flags *ParsedFlags) (Resolution, error) {
	if len(target) == 0 {
		return Resolution{Node: root, Flags: flags, Execute: HelpAction(root, root)}, nil
	}

	node, ok := root.Children[target[0]]
	if !ok {
		suggestions := FindSimilarCommands(target[0], root, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(strings.Join(target, " "), suggestions...)
	}

	return Resolution{Node: node, Flags: flags, Execute: HelpAction(node, root)}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)

	for _, f := range root.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	for _, f := range node.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name := f
		if idx := strings.Index(f, "="); idx != -1 {
			name = f[:idx]
		}
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	requiredCount := 0
	for _, a := range spec {
		if a.Required {
			requiredCount++
		}
	}

	if len(args) < requiredCount {
		if len(args) >= len(spec) {
			return usage.MissingArgument("argument")
		}
		return usage.MissingArgument(spec[len(args)].Name)
	}

	if len(args) > len(spec) {
		return usage.SurplusArgument(args[len(spec)])
	}

	return nil
}
