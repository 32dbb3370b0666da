package document

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/fyplab/fypml/pkg/fypml"
)

// ProcessingInstruction is the version stamp at the head of every serialized
// document since schema version 1:
//
//	<?fyp appVersion="5.4.1" schemaVersion="23"?>
//
// The target token equals the document's root tag. Version 0 documents
// predate versioning and carry no instruction; they are detected by its
// absence.
type ProcessingInstruction struct {
	Target        string
	AppVersion    string
	SchemaVersion int
}

var piContentRegex = regexp.MustCompile(
	`^\s*appVersion="([^"]*)"\s+schemaVersion="(\d+)"\s*$`)

// ParseProcessingInstruction parses the content of a processing instruction
// (the text between the target token and the closing "?>").
func ParseProcessingInstruction(target, content string) (ProcessingInstruction, error) {
	m := piContentRegex.FindStringSubmatch(content)
	if m == nil {
		return ProcessingInstruction{}, fmt.Errorf(
			"malformed processing instruction %q: %w", preview(content), fypml.ErrNotFypML)
	}
	v, err := strconv.Atoi(m[2])
	if err != nil {
		return ProcessingInstruction{}, fmt.Errorf(
			"processing instruction schema version %q: %w", m[2], fypml.ErrNotFypML)
	}
	return ProcessingInstruction{Target: target, AppVersion: m[1], SchemaVersion: v}, nil
}

// String renders the instruction content in its canonical persisted form,
// excluding the "<?target" and "?>" delimiters.
func (pi ProcessingInstruction) String() string {
	return fmt.Sprintf("appVersion=%q schemaVersion=%q", pi.AppVersion, strconv.Itoa(pi.SchemaVersion))
}

func preview(s string) string {
	if len(s) > fypml.MaxErrorPreviewLength {
		return s[:fypml.MaxErrorPreviewLength] + "…"
	}
	return s
}
