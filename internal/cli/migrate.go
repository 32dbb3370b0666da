package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/schema"
	"github.com/fyplab/fypml/internal/xmlio"
	"github.com/fyplab/fypml/pkg/fypml"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>...",
	Short: "Upgrade documents to the current schema version",
	Long: `Migrate upgrades each document to the current schema version, one version
step at a time, and writes the result. By default the source file is
replaced; use --output (or output_dir in fypml.yaml) to write elsewhere.

A document already at the current version is left untouched.`,
	Args: RequireFiles,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringP("output", "o", "", "Directory to write migrated documents to")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	outDir, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outDir == "" {
		outDir = rc.cfg.OutputDir
	}

	for _, path := range args {
		doc, err := xmlio.ReadFile(path)
		if err != nil {
			rc.printer.Failure(path, err)
			return err
		}
		from := doc.Version()

		doc, err = schema.MigrateToCurrent(doc, rc.log)
		if err != nil {
			rc.printer.Failure(path, err)
			return err
		}

		s, err := schema.SchemaFor(doc.Version())
		if err != nil {
			return err
		}
		if result := schema.ValidateDocument(s, doc); !result.Valid {
			rc.printer.Validation(path, result)
			if rc.cfg.Strict {
				return fmt.Errorf("migrated document failed validation: %w", fypml.ErrBadDocument)
			}
			rc.log.Error("%s: migrated document has validation findings; writing anyway", path)
		}

		outPath := path
		if outDir != "" {
			outPath = filepath.Join(outDir, filepath.Base(path))
		}
		if from == doc.Version() && outPath == path {
			rc.printer.Migration(path, outPath, from, doc.Version())
			continue
		}
		if err := xmlio.WriteFile(outPath, doc); err != nil {
			return err
		}
		rc.printer.Migration(path, outPath, from, doc.Version())
	}
	return nil
}
