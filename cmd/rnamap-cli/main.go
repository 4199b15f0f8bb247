package main

import "rnamap/cmd/rnamap-cli/cmd"

func main() {
	cmd.Execute()
}
