// Command ordsort prints the contents of a YAML document as an ordered
// sequence or an ordered map, rejecting duplicates.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	root, err := newRootCommand(os.LookupEnv, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		os.Exit(2)
	}

	if err := root.cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err) //nolint:errcheck
		os.Exit(1)
	}
}
