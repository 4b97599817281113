package main

import "github.com/devicelab-dev/droidview/pkg/cli"

func main() {
	cli.Execute()
}
