package main

import (
	"github.com/jasmine/vbanner/pkg/cli"
)

func main() {
	cli.Execute()
}
