package config

import (
	"bytes"
	"fmt"

	"github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// parseKDL maps the niri-style node layout onto a Document:
//
//	application "terminal" {
//	    spawn "foot" "--app-id" "dropdown"
//	    match app-id="^dropdown$" index=0
//	    exclude title="scratch"
//	}
func parseKDL(data []byte) (*Document, error) {
	kdoc, err := kdl.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var doc Document
	for _, node := range kdoc.Nodes {
		if name := nodeName(node); name != "application" {
			return nil, fmt.Errorf("unexpected top-level node %q (want application)", name)
		}
		app, err := kdlApplication(node)
		if err != nil {
			return nil, err
		}
		doc.Applications = append(doc.Applications, app)
	}
	return &doc, nil
}

func kdlApplication(node *document.Node) (ApplicationConfig, error) {
	var app ApplicationConfig
	if len(node.Arguments) != 1 {
		return app, fmt.Errorf("application: want exactly one name argument, got %d", len(node.Arguments))
	}
	name, err := kdlString(node.Arguments[0])
	if err != nil {
		return app, fmt.Errorf("application name: %w", err)
	}
	app.Name = name
	if node.Properties.Len() > 0 {
		return app, fmt.Errorf("application %q: unexpected properties", name)
	}

	for _, child := range node.Children {
		switch childName := nodeName(child); childName {
		case "spawn":
			if app.Spawn != nil {
				return app, fmt.Errorf("application %q: duplicate spawn", name)
			}
			app.Spawn = make([]string, 0, len(child.Arguments))
			for _, arg := range child.Arguments {
				s, err := kdlString(arg)
				if err != nil {
					return app, fmt.Errorf("application %q: spawn: %w", name, err)
				}
				app.Spawn = append(app.Spawn, s)
			}
		case "spawn-sh":
			if app.SpawnSh != nil {
				return app, fmt.Errorf("application %q: duplicate spawn-sh", name)
			}
			if len(child.Arguments) != 1 {
				return app, fmt.Errorf("application %q: spawn-sh wants one argument", name)
			}
			s, err := kdlString(child.Arguments[0])
			if err != nil {
				return app, fmt.Errorf("application %q: spawn-sh: %w", name, err)
			}
			app.SpawnSh = &s
		case "match", "exclude":
			rule, err := kdlRule(child)
			if err != nil {
				return app, fmt.Errorf("application %q: %s: %w", name, childName, err)
			}
			if childName == "match" {
				app.Matches = append(app.Matches, rule)
			} else {
				app.Excludes = append(app.Excludes, rule)
			}
		default:
			return app, fmt.Errorf("application %q: unknown node %q", name, childName)
		}
	}
	return app, nil
}

func kdlRule(node *document.Node) (RuleConfig, error) {
	var rule RuleConfig
	if len(node.Arguments) > 0 || len(node.Children) > 0 {
		return rule, fmt.Errorf("only properties are allowed")
	}
	for key, value := range node.Properties.Unordered() {
		switch key {
		case "app-id", "title":
			s, err := kdlString(value)
			if err != nil {
				return rule, fmt.Errorf("%s: %w", key, err)
			}
			if key == "app-id" {
				rule.AppID = &s
			} else {
				rule.Title = &s
			}
		case "index":
			n, ok := value.Value.(int64)
			if !ok {
				return rule, fmt.Errorf("index: want an integer, got %s", value.String())
			}
			idx := int(n)
			rule.Index = &idx
		default:
			return rule, fmt.Errorf("unknown property %q", key)
		}
	}
	return rule, nil
}

func nodeName(node *document.Node) string {
	if node.Name == nil {
		return ""
	}
	return node.Name.ValueString()
}

func kdlString(v *document.Value) (string, error) {
	s, ok := v.Value.(string)
	if !ok {
		return "", fmt.Errorf("want a string, got %s", v.String())
	}
	return s, nil
}
