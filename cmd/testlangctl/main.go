package main

import "github.com/keurnel/testlang/cmd/testlangctl/cmd"

func main() {
	cmd.Execute()
}
