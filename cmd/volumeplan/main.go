package main

import (
	"fmt"
	"os"

	"github.com/2beens/volumeplanner/internal/planner"

	"github.com/alecthomas/kong"
)

var CLI struct {
	Version kong.VersionFlag

	Generate GenerateCmd `cmd:"" help:"Generate a weekly workout plan for a training profile."`
	Catalog  CatalogCmd  `cmd:"" help:"List the exercise catalog."`
	Check    CheckCmd    `cmd:"" help:"Check a plan JSON file against a training profile."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("volumeplan"),
		kong.Description("Offline weekly training volume planner"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &Context{
		Planner: planner.New(planner.DefaultCatalog()),
		Out:     os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
