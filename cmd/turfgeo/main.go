package main

import "turfgeo/internal/cli"

func main() {
	cli.Execute()
}
