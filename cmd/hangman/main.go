package main

import (
	"hangman/internal/cli"
)

func main() {
	cli.Execute()
}
