// Package main is the entry point for the couchpad application.
package main

import (
	"github.com/samber/lo"

	"github.com/couchpad-app/couchpad/cmd"
	"github.com/couchpad-app/couchpad/config"
	"github.com/couchpad-app/couchpad/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
