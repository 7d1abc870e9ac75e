package main

import "agesweep/internal/cli"

func main() {
	cli.Execute()
}
