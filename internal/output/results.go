package output

import "github.com/GoodbyeNJN/niri-app-hotkey/internal/model"

// AppSummary is one configured application as shown by `validate`.
type AppSummary struct {
	Name     string `yaml:"name"     json:"name"`
	Launch   string `yaml:"launch"   json:"launch"`
	Matches  int    `yaml:"matches"  json:"matches"`
	Excludes int    `yaml:"excludes" json:"excludes"`
}

// ValidateResult is the output of the `validate` command.
type ValidateResult struct {
	OK           bool         `yaml:"ok"                     json:"ok"`
	Config       string       `yaml:"config"                 json:"config"`
	Applications []AppSummary `yaml:"applications,omitempty" json:"applications,omitempty"`
}

// ActionResult is printed after a hotkey command when --print is set.
type ActionResult struct {
	OK        bool    `yaml:"ok"                  json:"ok"`
	Action    string  `yaml:"action"              json:"action"`
	App       string  `yaml:"app"                 json:"app"`
	Decision  string  `yaml:"decision,omitempty"  json:"decision,omitempty"`
	Window    *uint64 `yaml:"window,omitempty"    json:"window,omitempty"`
	Workspace *uint64 `yaml:"workspace,omitempty" json:"workspace,omitempty"`
}

// ListedWindow is a window annotated with the applications that select it.
type ListedWindow struct {
	model.Window `yaml:",inline"`
	Workspace    string   `yaml:"workspace,omitempty" json:"workspace,omitempty"`
	Apps         []string `yaml:"apps,omitempty"      json:"apps,omitempty"`
}

// ListResult is the output of the `list` command.
type ListResult struct {
	App     string         `yaml:"app,omitempty" json:"app,omitempty"`
	Windows []ListedWindow `yaml:"windows"       json:"windows"`
}
