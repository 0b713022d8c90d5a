// Package ui provides terminal output utilities: a pager, an output
// writer, and the tabular printer used for station listings.
//
// The pager functionality intentionally allows execution of arbitrary
// commands specified via --pager or $PAGER. This is standard behavior for
// CLI tools (similar to git, less, man) and requires local access to
// exploit.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/term"
)

var (
	pagerDisabled bool
	pagerOverride string
	pagerMu       sync.RWMutex
)

// DisablePager disables the pager globally (used by --no-pager).
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager sets a pager override for this invocation (used by --pager).
func SetPager(cmd string) {
	pagerMu.Lock()
	pagerOverride = cmd
	pagerMu.Unlock()
}

// isBypassPager returns true if the pager command means "bypass pager".
func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

func isPagerDisabled() bool {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerDisabled
}

func getPagerOverride() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	return pagerOverride
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. --no-pager flag → direct output
//  2. stdout not a TTY → direct output
//  3. --pager=<cmd> flag → uses flag pager, "cat" bypasses
//  4. $PAGER env var → uses env pager, "cat" bypasses
//  5. Default: "less -FRSX"
func Pager(content string) {
	if isPagerDisabled() {
		fmt.Print(content)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(content)
		return
	}

	if override := getPagerOverride(); override != "" {
		if isBypassPager(override) {
			fmt.Print(content)
			return
		}
		runPagerCmd(override, content)
		return
	}

	if envPager := os.Getenv("PAGER"); envPager != "" {
		if isBypassPager(envPager) {
			fmt.Print(content)
			return
		}
		runPagerCmd(envPager, content)
		return
	}

	runPager("less", []string{"-FRSX"}, content)
}

// runPagerCmd parses a pager command string (e.g., "less -R") and executes it.
func runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)
	if len(parts) == 0 {
		fmt.Print(content)
		return
	}

	runPager(parts[0], parts[1:], content)
}

// runPager executes the pager command with the given content.
// Falls back to direct output on error.
func runPager(pager string, args []string, content string) {
	cmd := exec.Command(pager, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Print(content)
	}
}
