package main

import "github.com/kotor-tools/defgen/internal/cli"

func main() {
	cli.Execute()
}
