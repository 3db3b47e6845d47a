package main

import "github.com/kibahcorps/schedule1-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
