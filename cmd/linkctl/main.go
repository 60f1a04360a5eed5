// Copyright (c) linknl authors.
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/hostnet/linknl/cmd/linkctl/cmd"
)

const version = "v0.1"

func main() {
	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
