package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/county-estate/scaffold/internal/skeleton"
	"github.com/county-estate/scaffold/internal/tree"
)

const readmeWrap = 80

func newPreviewCmd(f *generateFlags) *cobra.Command {
	var showReadme bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the project tree without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			root, env, err := skeleton.Build()
			if err != nil {
				return err
			}
			auxs, err := skeleton.Auxiliaries(env)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, renderLayout(cfg.ProjectName, root))

			dirs, files := tree.Count(root)
			_, _ = fmt.Fprintf(out, "\n%s\n", cliMuted.Render(fmt.Sprintf("%d directories, %d files", dirs, files)))

			_, _ = fmt.Fprintf(out, "\n%s\n", cliPrimary.Bold(true).Render("Auxiliary files"))
			for _, e := range auxs {
				anchor := e.Anchor
				if cfg.ReadmeInProject {
					anchor = skeleton.AnchorProject
				}
				_, _ = fmt.Fprintf(out, "  %s %s %s\n", cliSuccess.Render("+"), e.Path, cliMuted.Render("("+anchor.String()+")"))
			}

			if !showReadme {
				return nil
			}
			readme, err := skeleton.Asset("README.md")
			if err != nil {
				return err
			}
			rendered, err := renderMarkdown(readme, newHeadlessManager().IsHeadless())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(out, "\n", rendered)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showReadme, "readme", false, "render the generated README")
	return cmd
}

// renderLayout draws d as a tree rooted at name. Directories carry a
// trailing slash.
func renderLayout(name string, d tree.Dir) string {
	t := layoutTree(cliPrimary.Bold(true).Render(name+"/"), d)
	return t.String()
}

func layoutTree(label string, d tree.Dir) *ltree.Tree {
	t := ltree.Root(label).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(cliBorder).
		ItemStyle(lipgloss.NewStyle())
	for _, name := range d.Names() {
		switch child := d[name].(type) {
		case tree.Dir:
			t.Child(layoutTree(cliPrimary.Render(name+"/"), child))
		case tree.File:
			t.Child(name)
		}
	}
	return t
}

// renderMarkdown renders md for the terminal. Plain output is used when
// stdout is not a terminal.
func renderMarkdown(md string, headless bool) (string, error) {
	style := "dark"
	if headless {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(readmeWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
