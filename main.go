// Package main is the entry point for the webify application.
package main

import (
	"github.com/samber/lo"
	"github.com/webify-cli/webify/cmd"
	"github.com/webify-cli/webify/config"
	"github.com/webify-cli/webify/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
