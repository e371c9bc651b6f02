package main

import "github.com/jcleary/toctidy/internal/cli"

func main() {
	cli.Execute()
}
