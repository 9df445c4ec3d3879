package main

import "github.com/LinusU/emoji-commit-type/cmd"

func main() {
	cmd.Execute()
}
