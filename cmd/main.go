// cmd/main.go
package main

import cmd "github.com/mwiater/queueviz/cmd/queueviz"

// main starts the queueviz CLI application by delegating to the
// cobra root command defined in the queueviz package.
func main() {
	cmd.Execute()
}
