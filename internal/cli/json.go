package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyplab/fypml/internal/jsonio"
	"github.com/fyplab/fypml/internal/xmlio"
)

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Convert between FypML and its JSON interchange form",
	Long: `Json converts a document between XML and JSON, writing to stdout.

A .fyp input is emitted as JSON at its declared schema version. A .json
input is decoded, migrated to the current schema version, and emitted as
FypML XML.`,
	Args: RequireOneFile,
	RunE: runJSON,
}

func init() {
	jsonCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.AddCommand(jsonCmd)
}

func runJSON(cmd *cobra.Command, args []string) error {
	rc, err := newRunContext(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	if strings.EqualFold(filepath.Ext(path), ".json") {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		doc, err := jsonio.Decode(f, rc.log)
		if err != nil {
			return err
		}
		return xmlio.Write(os.Stdout, doc)
	}

	doc, err := xmlio.ReadFile(path)
	if err != nil {
		return err
	}
	pretty, err := cmd.Flags().GetBool("pretty")
	if err != nil {
		return err
	}
	return jsonio.Encode(os.Stdout, doc, pretty || rc.cfg.PrettyJSON)
}
