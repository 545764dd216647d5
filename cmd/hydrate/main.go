// Package main is the entry point for the hydrate reminder overlay.
package main

import (
	"log"
	"os"

	"github.com/hydrate-app/hydrate/internal/app"
	"github.com/hydrate-app/hydrate/internal/cli"
)

func main() {
	log.SetPrefix("[hydrate] ")

	if err := cli.Execute(app.Run); err != nil {
		os.Exit(1)
	}
}
