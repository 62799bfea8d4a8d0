package prompts

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

const defaultPromptsPath = "prompts.yaml"

const (
	defaultSystemPrompt = "You are a helpful assistant."

	defaultOutlinePrompt = `Create a detailed outline for a {{.Duration}}-second social media script about "{{.Topic}}" in {{.Language}}.
Tone: {{.Tone}}
Platform: {{.Platform}}

Provide a structured outline with:
1. Hook/Intro (first 5-10 seconds)
2. Main content points (middle section)
3. Call-to-action (last 5-10 seconds)

Consider the platform's audience and format requirements.`

	defaultScriptPrompt = `Based on this outline: {{.Outline}}

Write a complete {{.Duration}}-second social media script about "{{.Topic}}" in {{.Language}}.
Tone: {{.Tone}}
Platform: {{.Platform}}

Make it engaging, conversational, and appropriate for the platform.
Include timing cues and natural pauses.
Ensure it fits within {{.Duration}} seconds when spoken at normal pace.`

	defaultHashtagsPrompt = `Based on this script: {{.Script}}

Generate:
1. 8-10 relevant hashtags for {{.Platform}}
2. A compelling caption/description

Topic: {{.Topic}}
Platform: {{.Platform}}
Language: {{.Language}}

Make hashtags trending and platform-appropriate.`
)

type Prompts struct {
	System SystemPrompts `yaml:"system"`
	Steps  StepPrompts   `yaml:"steps"`
}

type SystemPrompts struct {
	Default string `yaml:"default"`
}

type StepPrompts struct {
	Outline  string `yaml:"outline"`
	Script   string `yaml:"script"`
	Hashtags string `yaml:"hashtags"`
}

type OutlineParams struct {
	Topic    string
	Duration int
	Tone     string
	Platform string
	Language string
}

type ScriptParams struct {
	Outline  string
	Topic    string
	Duration int
	Tone     string
	Platform string
	Language string
}

type HashtagsParams struct {
	Script   string
	Topic    string
	Platform string
	Language string
}

// Defaults returns the built-in prompt set used when no prompts.yaml exists.
func Defaults() *Prompts {
	return &Prompts{
		System: SystemPrompts{
			Default: defaultSystemPrompt,
		},
		Steps: StepPrompts{
			Outline:  defaultOutlinePrompt,
			Script:   defaultScriptPrompt,
			Hashtags: defaultHashtagsPrompt,
		},
	}
}

func Load() (*Prompts, error) {
	if _, err := os.Stat(defaultPromptsPath); os.IsNotExist(err) {
		return Defaults(), nil
	}
	return LoadFrom(defaultPromptsPath)
}

func LoadFrom(path string) (*Prompts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	// Partial files override only what they set.
	p := Defaults()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse prompts file: %w", err)
	}

	return p, nil
}

func (p *Prompts) RenderOutline(params OutlineParams) (string, error) {
	return render(p.Steps.Outline, params)
}

func (p *Prompts) RenderScript(params ScriptParams) (string, error) {
	return render(p.Steps.Script, params)
}

func (p *Prompts) RenderHashtags(params HashtagsParams) (string, error) {
	return render(p.Steps.Hashtags, params)
}

func render(tmpl string, data any) (string, error) {
	t, err := template.New("prompt").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
