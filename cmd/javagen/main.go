package main

import (
	"fmt"
	"github.com/viant/javagen/cmd/javagen/cmd"
	"os"
)

func main() {
	if err := cmd.JavagenCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
