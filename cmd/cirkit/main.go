package main

import "github.com/OpenTraceLab/CirKit/cmd/cirkit/cmd"

func main() {
	cmd.Execute()
}
