package main

import "github.com/splitfare/splitfare/cmd"

func main() {
	cmd.Execute()
}
