package cmd

import (
	"fmt"
	"os"

	appdocs "video-to-audio/application/docs"

	"github.com/spf13/cobra"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Write the tool's README.md to the current directory",
	Long: `Generates the bundled README document and writes it to README.md in
the current working directory, overwriting any existing file. The
content is fixed at build time and identical on every run.`,
	RunE: runReadme,
}

func init() {
	rootCmd.AddCommand(readmeCmd)
}

func runReadme(cmd *cobra.Command, args []string) error {
	return RunReadmeWithDependencies(appdocs.NewGeneratorService(""), os.Stdout)
}

// RunReadmeWithDependencies runs the readme command with an injected service (for testing)
func RunReadmeWithDependencies(service *appdocs.GeneratorService, output OutputWriter) error {
	if _, err := service.GenerateAndPersist(); err != nil {
		return err
	}

	fmt.Fprintf(output, "Wrote %s\n", service.Path())
	return nil
}
