package main

import "github.com/OpenTraceLab/tau/cmd/tau/cmd"

func main() {
	cmd.Execute()
}
