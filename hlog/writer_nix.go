//go:build !windows
// +build !windows

package hlog

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

func IsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}

func isColorTerminal() bool {
	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if _, exists := os.LookupEnv("CLICOLOR_FORCE"); exists {
		return true
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if term := os.Getenv("TERM"); term != "" {
		if strings.HasSuffix(term, "-256color") ||
			strings.HasSuffix(term, "-color") ||
			strings.HasPrefix(term, "xterm") ||
			strings.HasPrefix(term, "screen") ||
			strings.HasPrefix(term, "vt100") ||
			strings.HasPrefix(term, "ansi") {
			return true
		}
	}

	return IsTerminal()
}
