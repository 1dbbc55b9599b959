package main

import "github.com/mcoot/wordboard/internal/cli"

func main() {
	cli.Execute()
}
