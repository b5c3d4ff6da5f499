package cli

import (
	"github.com/spf13/cobra"
)

var contentJSON bool

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site-wide product page content",
}

var contentShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the generic content blocks",
	Long: `Show the generic content shown on every product page.

A missing or unreadable content source is not an error; the sections are
simply empty.`,
	Args: cobra.NoArgs,
	RunE: runContentShow,
}

func init() {
	contentShowCmd.Flags().BoolVar(&contentJSON, "json", false, "output as JSON")
	contentCmd.AddCommand(contentShowCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := requireServices(ctx); err != nil {
		return err
	}

	content := contentService.Get(ctx)
	if contentJSON {
		return outputJSON(cmd, content)
	}

	sections := content.Sections()
	if len(sections) == 0 {
		cmd.Println("No generic content available.")
		return nil
	}
	for i, s := range sections {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("== %s ==\n", s.Title)
		cmd.Println(s.Body)
	}
	return nil
}
