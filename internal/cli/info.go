package cli

import (
	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/internal/xmlio"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show document facts",
	Long: `Info prints the document's schema version, the application release that
wrote it, and a summary of its contents, without modifying anything.`,
	Args: RequireOneFile,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	doc, err := xmlio.ReadFile(path)
	if err != nil {
		return err
	}

	rc.printer.Info("file:           %s", path)
	rc.printer.Info("schema version: %d (current is %d)", doc.Version(), schema.CurrentVersion)
	rc.printer.Info("written by:     %s", schema.AppVersionFor(doc.Version()))
	if title, ok := doc.Root().Attr("title"); ok && title != "" {
		rc.printer.Info("title:          %s", title)
	}
	rc.printer.Info("elements:       %d", countNodes(doc.Root()))

	s, err := schema.SchemaFor(doc.Version())
	if err != nil {
		return err
	}
	result := schema.ValidateDocument(s, doc)
	if result.Valid {
		rc.printer.Info("validation:     clean")
	} else {
		rc.printer.Info("validation:     %d finding(s)", len(result.Errors))
	}
	return nil
}

func countNodes(root *document.Node) int {
	count := 0
	stack := []*document.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, n.Children()...)
	}
	return count
}
