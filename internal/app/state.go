package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	MinDuration     = 10
	MaxDuration     = 600
	DefaultDuration = 60

	DefaultTone     = "Friendly"
	DefaultLanguage = "English"

	// AnyPlatform is what prompts see when no platform was chosen.
	AnyPlatform = "Any"
)

var (
	Tones     = []string{"Friendly", "Professional", "Inspirational", "Humorous", "Serious", "Casual"}
	Platforms = []string{"Instagram", "YouTube", "TikTok", "Facebook", "LinkedIn", "Twitter"}
	Languages = []string{"English", "Hindi"}
)

// Request holds the user inputs for a single generation. A fresh Request
// (and its Generation) is created per invocation; nothing is shared
// between concurrent requests.
type Request struct {
	Topic    string
	Duration int
	Tone     string
	Platform string
	Language string
}

// ApplyDefaults fills unset optional fields. Platform stays empty:
// empty means "any".
func (r *Request) ApplyDefaults() {
	if r.Duration == 0 {
		r.Duration = DefaultDuration
	}
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return errors.New("topic is required")
	}
	if r.Duration < MinDuration || r.Duration > MaxDuration {
		return fmt.Errorf("duration must be between %d and %d seconds, got %d", MinDuration, MaxDuration, r.Duration)
	}
	if !slices.Contains(Tones, r.Tone) {
		return fmt.Errorf("unknown tone %q", r.Tone)
	}
	if r.Platform != "" && !slices.Contains(Platforms, r.Platform) {
		return fmt.Errorf("unknown platform %q", r.Platform)
	}
	if !slices.Contains(Languages, r.Language) {
		return fmt.Errorf("unknown language %q", r.Language)
	}
	return nil
}

func (r Request) PlatformLabel() string {
	if r.Platform == "" {
		return AnyPlatform
	}
	return r.Platform
}

// Generation is the state record threaded through the pipeline. Content
// fields are populated in order; once Err is set, remaining steps are
// skipped. At completion either all three content fields are set with
// Err nil, or Err is non-nil and a prefix of them is set.
type Generation struct {
	Request

	Outline  string
	Script   string
	Hashtags string
	Err      error
}

const (
	OutlineHeading  = "## Script Outline"
	ScriptHeading   = "## Final Script"
	HashtagsHeading = "## Hashtags & Caption"
)

// Render formats the completed generation as a single display string:
// one error line, or the three sections under their fixed headings.
func (g *Generation) Render() string {
	if g.Err != nil {
		return "Error: " + g.Err.Error()
	}

	var b strings.Builder
	b.WriteString(OutlineHeading + "\n\n" + g.Outline + "\n\n")
	b.WriteString(ScriptHeading + "\n\n" + g.Script + "\n\n")
	b.WriteString(HashtagsHeading + "\n\n" + g.Hashtags)
	return b.String()
}
