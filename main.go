// main.go
package main

import cmd "github.com/mwiater/benchplot/cmd/benchplot"

// main starts the benchplot CLI application by delegating to the
// cobra root command defined in the benchplot package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
