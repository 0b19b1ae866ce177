package main

import (
	"deepthought/internal/cli"
)

func main() {
	cli.Execute()
}
