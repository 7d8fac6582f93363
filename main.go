package main

import (
	"github.com/srtobi/snake-logic-puzzle/tools/level-builder/cmd"
)

func main() {
	cmd.Execute()
}
