package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fyplab/fypml/internal/schema"
)

func TestValidation_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Validation("fig.fyp", schema.ValidationResult{Valid: true})
	out := buf.String()
	if !strings.Contains(out, "fig.fyp: valid") {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestValidation_Findings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	var r schema.ValidationResult
	r.Valid = true
	r.AddError("fyp/graph[0]: required children missing or misordered")
	r.AddError(`fyp: invalid value "200" for attribute "fontSize"`)
	p.Validation("fig.fyp", r)

	out := buf.String()
	if !strings.Contains(out, "2 finding(s)") {
		t.Errorf("Expected finding count, got: %s", out)
	}
	if !strings.Contains(out, "  fyp/graph[0]:") {
		t.Errorf("Expected indented detail lines, got: %s", out)
	}
}

func TestMigration_NoOp(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Migration("fig.fyp", "out/fig.fyp", 23, 23)
	if !strings.Contains(buf.String(), "already at schema version 23") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

func TestMigration_Upgraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Migration("fig.fyp", "out/fig.fyp", 5, 23)
	out := buf.String()
	if !strings.Contains(out, "schema version 5 -> 23") || !strings.Contains(out, "out/fig.fyp") {
		t.Errorf("Unexpected output: %s", out)
	}
}

func TestFailure(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Failure("broken.fyp", errors.New("root element is \"svg\""))
	if !strings.Contains(buf.String(), "broken.fyp") {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}
