package main

import "github.com/crate-fm/crate/cli"

func main() {
	cli.Execute()
}
