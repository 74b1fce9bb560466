// Command brnstm runs the brnstm interpreter.
package main

import (
	"os"

	"github.com/brnstm-lang/brnstm/cmd/brnstm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
