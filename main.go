package main

import "github.com/mole-works/mend/cmd"

func main() {
	cmd.Execute()
}
