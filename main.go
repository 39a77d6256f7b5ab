package main

import (
	"fmt"
	"os"

	"github.com/sciencehub/hubctl/api"
	"github.com/sciencehub/hubctl/cli"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.Execute(); err != nil {
		if apiErr, ok := api.AsError(err); ok {
			fmt.Fprintf(os.Stderr, "error: %s (HTTP %d)\n", apiErr.Message, apiErr.Status)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
