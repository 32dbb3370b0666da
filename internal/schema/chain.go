package schema

import (
	"fmt"

	"github.com/fyplab/fypml/internal/document"
	"github.com/fyplab/fypml/pkg/fypml"
)

// CurrentVersion is the schema version written by this build. It is
// maintained alongside the newest version constructor; bump it when a new
// version file is added.
const CurrentVersion = 23

// SchemaFor constructs the schema object for a version number. A version
// outside [0, CurrentVersion] indicates a broken chain.
func SchemaFor(version int) (Schema, error) {
	if version < 0 || version > CurrentVersion {
		return nil, fmt.Errorf("no schema object for version %d: %w", version, fypml.ErrBrokenChain)
	}
	return constructors[version](), nil
}

var constructors = [CurrentVersion + 1]func() Schema{
	newSchema0, newSchema1, newSchema2, newSchema3, newSchema4, newSchema5,
	newSchema6, newSchema7, newSchema8, newSchema9, newSchema10, newSchema11,
	newSchema12, newSchema13, newSchema14, newSchema15, newSchema16,
	newSchema17, newSchema18, newSchema19, newSchema20, newSchema21,
	newSchema22, newSchema23,
}

// AppVersionFor returns the last application version known to write the
// given schema version, for the processing instruction of serialized
// documents. Unknown versions fall back to the current application version.
func AppVersionFor(version int) string {
	if v, ok := appVersions[version]; ok {
		return v
	}
	return fypml.AppVersion
}

var appVersions = map[int]string{
	1: "1.0.2", 2: "1.2.0", 3: "1.4.1", 4: "2.0.0", 5: "2.0.3",
	6: "2.1.0", 7: "2.1.2", 8: "2.2.0", 9: "3.0.0", 10: "3.1.0",
	11: "3.1.4", 12: "3.2.0", 13: "4.0.0", 14: "4.0.2", 15: "4.1.0",
	16: "4.2.0", 17: "4.2.3", 18: "4.3.0", 19: "4.3.2", 20: "5.0.0",
	21: "5.1.0", 22: "5.2.1", 23: fypml.AppVersion,
}

// MigrateToCurrent upgrades a document to the current schema version by
// repeatedly invoking single-step migrations. A document already at the
// current version is returned unchanged with zero migration steps
// performed. The source document is consumed: on success the caller must
// use only the returned document, and on failure the source must be
// discarded.
func MigrateToCurrent(doc *document.Document, log fypml.Logger) (*document.Document, error) {
	if log == nil {
		log = nopLogger{}
	}
	if doc.Version() == CurrentVersion {
		return doc, nil
	}
	if doc.Version() > CurrentVersion {
		return nil, fmt.Errorf("document reports schema version %d, newer than supported version %d: %w",
			doc.Version(), CurrentVersion, fypml.ErrNotFypML)
	}

	for v := doc.Version() + 1; v <= CurrentVersion; v++ {
		s, err := SchemaFor(v)
		if err != nil {
			return nil, err
		}
		log.Verbose("Migrating schema version %d -> %d", v-1, v)
		doc, err = s.MigrateFrom(doc)
		if err != nil {
			return nil, err
		}
	}
	log.Verbose("Migration chain complete at schema version %d (authored at %d)",
		doc.Version(), doc.OriginalVersion())
	return doc, nil
}

// nopLogger discards everything; used when the caller passes no logger.
type nopLogger struct{}

func (nopLogger) Verbose(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})    {}
func (nopLogger) Error(string, ...interface{})   {}
