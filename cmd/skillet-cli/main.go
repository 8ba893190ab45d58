package main

import "skillet/cmd/skillet-cli/cmd"

func main() {
	cmd.Execute()
}
