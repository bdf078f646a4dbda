package main

import (
	"os"

	"github.com/go-sif/sifprep/internal/cli"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}
