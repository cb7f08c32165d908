package main

import (
	"fmt"
	"os"
)

var Commit string = "dirty"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
