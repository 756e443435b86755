package main

import "geoio/internal/cli"

func main() {
	cli.Execute()
}
