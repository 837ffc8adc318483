// Command lodestar scaffolds packages and workspaces and reports the
// discovered project environment.
package main

import "github.com/finchley/lodestar/cmd"

func main() {
	cmd.Execute()
}
