package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/GoodbyeNJN/niri-app-hotkey/internal/model"
)

var (
	ErrEmptyName            = errors.New("application name cannot be empty")
	ErrDuplicateApplication = errors.New("duplicate application name")
	ErrSpawnConflict        = errors.New("spawn and spawn-sh are mutually exclusive")
	ErrNoSpawn              = errors.New("one of spawn or spawn-sh is required")
	ErrEmptySpawn           = errors.New("spawn command is empty")
	ErrInvalidPattern       = errors.New("invalid pattern")
	ErrNegativeIndex        = errors.New("index cannot be negative")
	ErrUnknownApplication   = errors.New("application not found in configuration")
)

// LintError is a validation problem at a location in the document.
type LintError struct {
	Path string
	Err  error
}

func (e LintError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e LintError) Unwrap() error { return e.Err }

// Config is a validated configuration with compiled rules.
type Config struct {
	Path         string
	Applications []model.Application
}

// Lint reports every validation problem in the document.
func (d *Document) Lint() []LintError {
	var errs []LintError
	seen := map[string]struct{}{}
	for i, app := range d.Applications {
		path := fmt.Sprintf("applications[%d]", i)
		if app.Name == "" {
			errs = append(errs, LintError{Path: path, Err: ErrEmptyName})
		} else {
			path = fmt.Sprintf("applications[%d] (%s)", i, app.Name)
			if _, dup := seen[app.Name]; dup {
				errs = append(errs, LintError{Path: path, Err: fmt.Errorf("%w %q", ErrDuplicateApplication, app.Name)})
			}
			seen[app.Name] = struct{}{}
		}
		switch {
		case app.Spawn != nil && app.SpawnSh != nil:
			errs = append(errs, LintError{Path: path, Err: ErrSpawnConflict})
		case app.Spawn == nil && app.SpawnSh == nil:
			errs = append(errs, LintError{Path: path, Err: ErrNoSpawn})
		case app.Spawn != nil && (len(app.Spawn) == 0 || app.Spawn[0] == ""):
			errs = append(errs, LintError{Path: path + ".spawn", Err: ErrEmptySpawn})
		}
		errs = append(errs, lintRules(path+".matches", app.Matches)...)
		errs = append(errs, lintRules(path+".excludes", app.Excludes)...)
	}
	return errs
}

func lintRules(path string, rules []RuleConfig) []LintError {
	var errs []LintError
	for i, r := range rules {
		if _, err := r.compile(); err != nil {
			errs = append(errs, LintError{Path: fmt.Sprintf("%s[%d]", path, i), Err: err})
		}
	}
	return errs
}

// Validate returns all lint errors joined, or nil.
func (d *Document) Validate() error {
	lint := d.Lint()
	if len(lint) == 0 {
		return nil
	}
	errs := make([]error, len(lint))
	for i := range lint {
		errs[i] = lint[i]
	}
	return errors.Join(errs...)
}

// Compile validates the document and compiles its rules.
func (d *Document) Compile() (*Config, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	cfg := &Config{Applications: make([]model.Application, 0, len(d.Applications))}
	for _, app := range d.Applications {
		compiled := model.Application{
			Name:    app.Name,
			Spawn:   app.Spawn,
			SpawnSh: app.SpawnSh,
		}
		var err error
		if compiled.Matches, err = compileRules(app.Matches); err != nil {
			return nil, fmt.Errorf("application %q matches: %w", app.Name, err)
		}
		if compiled.Excludes, err = compileRules(app.Excludes); err != nil {
			return nil, fmt.Errorf("application %q excludes: %w", app.Name, err)
		}
		cfg.Applications = append(cfg.Applications, compiled)
	}
	return cfg, nil
}

// Find returns the application called name.
func (c *Config) Find(name string) (*model.Application, error) {
	for i := range c.Applications {
		if c.Applications[i].Name == name {
			return &c.Applications[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownApplication, name)
}

func compileRules(rules []RuleConfig) ([]model.MatchRule, error) {
	out := make([]model.MatchRule, 0, len(rules))
	for _, r := range rules {
		compiled, err := r.compile()
		if err != nil {
			return nil, err
		}
		out = append(out, compiled)
	}
	return out, nil
}

func (r RuleConfig) compile() (model.MatchRule, error) {
	var rule model.MatchRule
	if r.AppID != nil {
		re, err := regexp.Compile(*r.AppID)
		if err != nil {
			return rule, fmt.Errorf("%w app-id %q: %w", ErrInvalidPattern, *r.AppID, err)
		}
		rule.AppID = re
	}
	if r.Title != nil {
		re, err := regexp.Compile(*r.Title)
		if err != nil {
			return rule, fmt.Errorf("%w title %q: %w", ErrInvalidPattern, *r.Title, err)
		}
		rule.Title = re
	}
	if r.Index != nil {
		if *r.Index < 0 {
			return rule, fmt.Errorf("%w: %d", ErrNegativeIndex, *r.Index)
		}
		idx := *r.Index
		rule.Index = &idx
	}
	return rule, nil
}
