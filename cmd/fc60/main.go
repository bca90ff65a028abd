// Command fc60 is the command-line front end of the FC60 engine.
package main

import (
	"fmt"
	"os"

	"github.com/warp/fc60/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
