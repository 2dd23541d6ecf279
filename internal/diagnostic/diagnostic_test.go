package diagnostic

import (
	"strings"
	"testing"
)

func TestCollector_WarnAndCounts(t *testing.T) {
	c := NewCollector(false, false)

	c.Warn(CategoryTypeUnsupported, "User", "unsupported type")
	c.Warn(CategoryEnumUnresolved, "Post", "enum not registered")
	c.Error(CategoryConfigInvalid, "", "bad config")
	c.Info(CategoryTypeCycle, "Tree", "note")

	if c.WarningCount() != 2 {
		t.Errorf("WarningCount() = %d, want 2", c.WarningCount())
	}
	if c.ErrorCount() != 1 {
		t.Errorf("ErrorCount() = %d, want 1", c.ErrorCount())
	}
	if !c.HasErrors() {
		t.Error("expected HasErrors()")
	}
	if len(c.Diagnostics()) != 4 {
		t.Errorf("Diagnostics() len = %d, want 4", len(c.Diagnostics()))
	}
}

func TestCollector_StrictPromotesWarnings(t *testing.T) {
	c := NewCollector(true, false)
	c.Warn(CategoryTypeCycle, "Category", "recursive type")

	if !c.HasErrors() {
		t.Error("strict mode should promote warnings to errors")
	}
	if c.WarningCount() != 0 {
		t.Errorf("WarningCount() = %d, want 0", c.WarningCount())
	}
}

func TestCollector_QuietSuppresses(t *testing.T) {
	c := NewCollector(false, true)
	c.Warn(CategoryTypeCycle, "A", "w")
	c.Info(CategoryTypeCycle, "A", "i")
	c.Error(CategoryConfigInvalid, "", "e")

	// Errors always land; warnings and infos are dropped.
	if len(c.Diagnostics()) != 1 {
		t.Errorf("Diagnostics() len = %d, want 1", len(c.Diagnostics()))
	}
	if !c.HasErrors() {
		t.Error("quiet mode must not drop errors")
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Category: CategoryEnumUnresolved,
		Decl:     "User",
		Message:  "enum Color is not registered",
		Hint:     "check the $Enums namespace",
	}
	s := d.String()

	for _, part := range []string{"User - ", "warning: ", "[enum-unresolved]", "enum Color is not registered", "hint: check the $Enums namespace"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}

	bare := Diagnostic{Severity: SeverityError, Message: "boom"}
	if got := bare.String(); got != "error: boom" {
		t.Errorf("String() = %q, want %q", got, "error: boom")
	}
}

func TestCollector_Summary(t *testing.T) {
	c := NewCollector(false, false)
	if c.Summary() != "no issues" {
		t.Errorf("Summary() = %q", c.Summary())
	}

	c.Warn(CategoryTypeCycle, "A", "w1")
	c.Warn(CategoryTypeCycle, "B", "w2")
	c.Error(CategoryConfigInvalid, "", "e1")

	got := c.Summary()
	if !strings.Contains(got, "1 error(s)") || !strings.Contains(got, "2 warning(s)") {
		t.Errorf("Summary() = %q", got)
	}
}

func TestCollector_FormatAll(t *testing.T) {
	c := NewCollector(false, false)
	if c.FormatAll() != "" {
		t.Errorf("empty FormatAll() = %q", c.FormatAll())
	}

	c.Warn(CategoryTypeUnsupported, "A", "first")
	c.Warn(CategoryTypeUnsupported, "B", "second")

	lines := strings.Split(strings.TrimRight(c.FormatAll(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("FormatAll() lines = %d, want 2", len(lines))
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.Warn(CategoryTypeCycle, "A", "w")
	c.Error(CategoryConfigInvalid, "", "e")
	if c.HasErrors() || c.WarningCount() != 0 || c.ErrorCount() != 0 {
		t.Error("nil collector should report nothing")
	}
	if c.Diagnostics() != nil {
		t.Error("nil collector Diagnostics() should be nil")
	}
}
