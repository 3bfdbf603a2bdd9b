package main

import "github.com/aalvaropc/twolink/internal/cli"

func main() {
	cli.Execute()
}
