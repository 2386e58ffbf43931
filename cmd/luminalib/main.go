// Package main is the entry point for the LuminaLib server.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/luminalib/luminalib/cmd/luminalib/app"
)

func main() {
	app.NewApp().Run()
}
