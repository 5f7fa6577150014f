package main

import "github.com/linfen0/uv-snapshot-cli/internal/cli"

func main() {
	cli.Execute()
}
