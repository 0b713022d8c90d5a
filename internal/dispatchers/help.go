package dispatchers

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/lasif-tools/cli/internal/ui"
	"github.com/lasif-tools/cli/internal/ui/style"
)

// formatUsage styles the usage line with the command in Info color and the
// parameter part muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' || (c >= 'A' && c <= 'Z') {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// RenderHelp produces the help text for one command: its structured
// metadata, stripped of leading/trailing whitespace. Every registered
// command must carry a non-empty summary and usage line; the registry test
// enforces that.
func RenderHelp(node *DispatchNode, root *DispatchNode) string {
	if node == root {
		return renderRootHelp(root)
	}

	var out bytes.Buffer

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(node.Usage))
	out.WriteString("\n")

	if node.Description != "" {
		out.WriteString("\n")
		out.WriteString(strings.TrimSpace(node.Description))
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("\nARGUMENTS\n")
		for _, a := range node.Args {
			name := a.Name
			if !a.Required {
				name = "[" + name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", name)), a.Description)
		}
	}

	if len(node.Flags) > 0 {
		out.WriteString("\nFLAGS\n")
		for _, f := range node.Flags {
			name := strings.Join(f.Names, ", ")
			if f.ValueHint != "" {
				name = name + " " + f.ValueHint
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
		}
	}

	return strings.TrimSpace(out.String())
}

// renderRootHelp renders the overview shown by "lasif help": summary,
// usage, and all commands grouped by category.
func renderRootHelp(root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(root.Name + " - " + root.Summary + "\n\n")
	out.WriteString("USAGE\n   ")
	out.WriteString(formatUsage(root.Usage))
	out.WriteString("\n\n")

	grouped := make(map[CommandCategory][]*DispatchNode)
	for _, child := range root.Children {
		grouped[child.Category] = append(grouped[child.Category], child)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}

		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name < cmds[j].Name
		})

		out.WriteString(cat.String())
		out.WriteString("\n")
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-28s", cmd.Name)), cmd.Summary)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'lasif <command> help' for detailed help on a specific command.")
	return strings.TrimSpace(out.String())
}

// GenericUsage renders the short usage shown for empty or unknown
// invocations: every known command name, sorted lexicographically.
func GenericUsage(root *DispatchNode) string {
	names := make([]string, 0, len(root.Children))
	for name := range root.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	var out bytes.Buffer
	out.WriteString("Usage: " + root.Usage + "\n\n")
	out.WriteString("Available commands:\n")
	for _, name := range names {
		out.WriteString("\t" + name + "\n")
	}
	out.WriteString("\nTo get help for a specific command type\n")
	out.WriteString("\t" + root.Name + " <command> help\n")
	return out.String()
}

// HelpAction returns a CommandFunc that prints a node's help text.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		ui.Pager(RenderHelp(node, root) + "\n")
		return nil
	}
}

// GenericUsageAction returns a CommandFunc that prints the generic usage.
func GenericUsageAction(root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		ui.Pager(GenericUsage(root))
		return nil
	}
}
