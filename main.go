package main

import (
	"os"

	"github.com/cometfolio/cometfolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
