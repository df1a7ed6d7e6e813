// Package cli wires the scaffold command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/county-estate/scaffold/pkg/version"
)

// NewRootCmd builds the scaffold command tree. The root command generates
// the project; preview and version are subcommands.
func NewRootCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Generate the county real-estate platform project skeleton",
		Long: `scaffold writes the county real-estate platform skeleton into the
working directory: a FastAPI backend, a WeChat mini-program frontend,
Docker and CI configuration, and documentation.

Running it again overwrites every generated file and leaves other files
alone.`,
		Version:       version.GetVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, f)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("scaffold %s\n", version.GetVersion()))

	flags := cmd.Flags()
	flags.StringVar(&f.dir, "dir", ".", "working directory the project is created in")
	flags.StringVar(&f.name, "name", "", "project root directory name (default from config)")
	flags.BoolVar(&f.readmeInProject, "readme-in-project", false, "write README.md into the project root instead of the working directory")
	flags.BoolVar(&f.dryRun, "dry-run", false, "show what would be written without touching disk")
	flags.BoolVar(&f.confirm, "confirm", false, "ask before writing into an existing project root (terminal only)")

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&f.configPath, "config", "", "path to a YAML configuration file")
	pflags.BoolVarP(&f.verbose, "verbose", "v", false, "log every filesystem operation to stderr")
	pflags.StringVar(&f.logFormat, "log-format", "", "log output format: text or json")

	cmd.AddCommand(newPreviewCmd(f), newVersionCmd())
	return cmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cliError.Render("Error:"), err)
		return err
	}
	return nil
}
