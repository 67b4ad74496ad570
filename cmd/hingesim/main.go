// Command hingesim evaluates laptop hinge clearance from the command line.
package main

import "github.com/chazu/hingesim/cmd/hingesim/cmd"

func main() {
	cmd.Execute()
}
