package main

import (
	"github.com/ziprobe/ziprobe/cmd"
)

func main() {
	cmd.Execute()
}
