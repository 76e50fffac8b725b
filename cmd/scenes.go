package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/prismrt/bandtracer/pkg/scene"
)

// ListScenes prints the built-in scene library.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Scene", "Description"})
	for _, name := range scene.Names() {
		table.Append([]string{name, scene.Describe(name)})
	}
	table.Render()
	return nil
}
