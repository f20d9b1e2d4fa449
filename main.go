// Package main is the entry point for the bii command.
package main

import (
	"github.com/biiclasses/bii/cmd"
	"github.com/biiclasses/bii/config"
	"github.com/biiclasses/bii/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
