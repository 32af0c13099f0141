package main

import (
	"github.com/shaikhalvee/jvarkit/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
