// fsfind is a find(1)-like utility for searching local directory trees.
package main

import (
	"fmt"
	"os"

	"github.com/jrd666/fsfind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
