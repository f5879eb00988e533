package main

import (
	"fmt"
	"os"
)

var tool unbTool

func main() {
	tool.loadApp()
	if err := tool.cli.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
