package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_STANDINGS_RUN") == "1" {
		return
	}

	app := newApp(os.Stdin, os.Stdout, afero.NewOsFs())
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
