package main

import (
	"github.com/tutils/xxrand/cmd"
)

func main() {
	cmd.Execute()
}
