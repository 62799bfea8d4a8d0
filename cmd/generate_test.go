package cmd

import (
	"context"
	"os"
	"testing"

	"reelscript/internal/app"
	"reelscript/pkg/prompts"
)

// stubClient implements llm.Client with canned results.
type stubClient struct {
	outline  string
	script   string
	hashtags string
}

func (s *stubClient) GenerateOutline(_ context.Context, _ prompts.OutlineParams) (string, error) {
	return s.outline, nil
}

func (s *stubClient) GenerateScript(_ context.Context, _ prompts.ScriptParams) (string, error) {
	return s.script, nil
}

func (s *stubClient) GenerateHashtags(_ context.Context, _ prompts.HashtagsParams) (string, error) {
	return s.hashtags, nil
}

// pipeStdin points os.Stdin at a pipe for the duration of the test, so
// terminal detection sees a non-TTY.
func pipeStdin(t *testing.T) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	original := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = original
		_ = r.Close()
		_ = w.Close()
	})
}

func TestIsInteractiveWithTopic(t *testing.T) {
	if isInteractive("Cooking hacks") {
		t.Error("isInteractive() = true with a topic set, want false")
	}
}

func TestIsInteractiveNonTerminalStdin(t *testing.T) {
	pipeStdin(t)

	if isInteractive("") {
		t.Error("isInteractive() = true with piped stdin, want false")
	}
}

func TestRunWithSpinnerReturnsGeneration(t *testing.T) {
	pipeStdin(t)

	pipeline := app.NewPipeline(&stubClient{outline: "OUTLINE", script: "SCRIPT", hashtags: "TAGS"})
	req := app.Request{Topic: "Cooking hacks", Duration: 60, Tone: "Friendly", Language: "English"}

	gen, err := runWithSpinner(context.Background(), pipeline, req)
	if err != nil {
		t.Fatalf("runWithSpinner() unexpected error: %v", err)
	}
	if gen == nil {
		t.Fatal("runWithSpinner() returned nil generation without error")
	}
	if gen.Err != nil {
		t.Fatalf("Generation.Err = %v, want nil", gen.Err)
	}
	if gen.Script != "SCRIPT" {
		t.Errorf("Generation.Script = %q, want %q", gen.Script, "SCRIPT")
	}
}
