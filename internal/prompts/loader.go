// Package prompts holds the LLM prompt templates for generated content.
// Templates are text/template sources keyed by name in an embedded JSON file.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"text/template"
)

// LinkedInPostKey names the LinkedIn post prompt.
const LinkedInPostKey = "linkedin-post"

//go:embed content.json
var contentJSON []byte

// LinkedInPost is the data for the LinkedIn post prompt. User-supplied
// fields are expected to be quoted by the caller.
type LinkedInPost struct {
	Topic        string
	Audience     string
	Tone         string
	Keywords     string
	IncludeImage bool
}

var load = sync.OnceValues(func() (*template.Template, error) {
	return parse(contentJSON)
})

func parse(data []byte) (*template.Template, error) {
	var sources map[string]string
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file: %w", err)
	}

	root := template.New("prompts").Option("missingkey=error")
	for name, src := range sources {
		if _, err := root.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("failed to parse prompt %q: %w", name, err)
		}
	}
	return root, nil
}

// Render executes the named prompt with data.
func Render(name string, data any) (string, error) {
	root, err := load()
	if err != nil {
		return "", err
	}
	t := root.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("prompt %q not found", name)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %q: %w", name, err)
	}
	return sb.String(), nil
}

// Names returns the available prompt names, sorted.
func Names() ([]string, error) {
	root, err := load()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, t := range root.Templates() {
		if t.Name() != root.Name() {
			names = append(names, t.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
