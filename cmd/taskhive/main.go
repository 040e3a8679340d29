package main

import "github.com/taskhive/taskhive/internal/cli"

func main() {
	cli.Execute()
}
