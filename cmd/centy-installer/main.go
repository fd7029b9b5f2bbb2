package main

import "github.com/centy-io/centy-installer/internal/cli"

func main() {
	cli.Execute()
}
