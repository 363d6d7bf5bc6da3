package main

import (
	"fmt"
	"os"

	"github.com/ngrash/go-strtime/cmd/strtime/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "strtime:", err)
		os.Exit(1)
	}
}
