package main

import "github.com/tessro/mocnotify/internal/cli"

func main() {
	cli.Execute()
}
