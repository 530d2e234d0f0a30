package main

import "binpix/cmd/binpix/cmd"

func main() {
	cmd.Execute()
}
