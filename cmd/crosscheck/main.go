package main

import "github.com/crosscheck-ai/crosscheck/cmd/crosscheck/cli"

func main() {
	cli.Execute()
}
