//go:build windows
// +build windows

package hlog

import (
	"os"

	"github.com/mattn/go-isatty"
)

func IsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

func isColorTerminal() bool {
	return IsTerminal()
}
