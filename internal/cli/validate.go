package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/internal/xmlio"
	"github.com/fyplab/fypml/pkg/fypml"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate documents against their declared schema version",
	Long: `Validate parses each document and checks every element against the schema
version the document declares: attribute values, required attributes, and
child placement. The document is not migrated; findings refer to the file
as written.`,
	Args: RequireFiles,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	var firstErr error
	invalid := 0
	for _, path := range args {
		doc, err := xmlio.ReadFile(path)
		if err != nil {
			rc.printer.Failure(path, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		s, err := schema.SchemaFor(doc.Version())
		if err != nil {
			return err
		}
		rc.log.Verbose("Validating %s at schema version %d", path, doc.Version())
		result := schema.ValidateDocument(s, doc)
		rc.printer.Validation(path, result)
		if !result.Valid {
			invalid++
		}
	}

	if firstErr != nil {
		return firstErr
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation: %w", invalid, len(args), fypml.ErrBadDocument)
	}
	return nil
}
