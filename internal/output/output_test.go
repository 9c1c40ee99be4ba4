package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

func capture(t *testing.T, format Format, pretty bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldFormat, oldPretty := Out, OutputFormat, PrettyOutput
	Out, OutputFormat, PrettyOutput = &buf, format, pretty
	t.Cleanup(func() { Out, OutputFormat, PrettyOutput = oldOut, oldFormat, oldPretty })
	return &buf
}

func u64(n uint64) *uint64 { return &n }

func TestPrint_YAML(t *testing.T) {
	buf := capture(t, FormatYAML, false)
	result := ValidateResult{
		OK:     true,
		Config: "/home/me/.config/niri/niri-app-hotkey.yaml",
		Applications: []AppSummary{
			{Name: "terminal", Launch: "spawn", Matches: 1},
		},
	}
	if err := Print(result); err != nil {
		t.Fatal(err)
	}

	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", buf.String())
	}
	var decoded ValidateResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || len(decoded.Applications) != 1 || decoded.Applications[0].Name != "terminal" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPrint_JSONCompact(t *testing.T) {
	buf := capture(t, FormatJSON, false)
	if err := Print(ActionResult{OK: true, Action: "show", App: "terminal", Decision: "focus", Window: u64(42)}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("compact output should be a single line, got:\n%s", buf.String())
	}
	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if m["window"] != float64(42) {
		t.Errorf("window = %v, want 42", m["window"])
	}
	if _, ok := m["workspace"]; ok {
		t.Error("nil workspace should be omitted")
	}
}

func TestPrint_JSONPretty(t *testing.T) {
	buf := capture(t, FormatJSON, true)
	if err := Print(ActionResult{OK: true, Action: "hide", App: "terminal"}); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "  \"action\": \"hide\"") {
		t.Errorf("expected indented keys, got:\n%s", buf.String())
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	capture(t, Format("xml"), false)
	if err := Print(ListResult{}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("ParseFormat(toml) should fail")
	}
}

func TestListResult_FlattensWindow(t *testing.T) {
	appID := "foot"
	result := ListResult{Windows: []ListedWindow{{
		Window:    model.Window{ID: 3, AppID: &appID, WorkspaceID: u64(1)},
		Workspace: "main",
		Apps:      []string{"terminal"},
	}}}

	for _, format := range []Format{FormatYAML, FormatJSON} {
		buf := capture(t, format, false)
		if err := Print(result); err != nil {
			t.Fatal(err)
		}
		var decoded struct {
			Windows []map[string]interface{} `yaml:"windows" json:"windows"`
		}
		var err error
		if format == FormatJSON {
			err = json.Unmarshal(buf.Bytes(), &decoded)
		} else {
			err = yaml.Unmarshal(buf.Bytes(), &decoded)
		}
		if err != nil {
			t.Fatalf("%s: %v", format, err)
		}
		if len(decoded.Windows) != 1 {
			t.Fatalf("%s: windows = %v", format, decoded.Windows)
		}
		w := decoded.Windows[0]
		if w["app_id"] != "foot" || w["workspace"] != "main" {
			t.Errorf("%s: window not flattened: %v", format, w)
		}
	}
}

func TestValidateResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(ValidateResult{OK: true, Config: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["applications"]; ok {
		t.Error("empty applications should be omitted")
	}
	if _, ok := m["ok"]; !ok {
		t.Error("ok should always be present")
	}
}
