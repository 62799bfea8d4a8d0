package app

import (
	"context"
	"fmt"
	"log/slog"

	"reelscript/internal/llm"
	"reelscript/pkg/prompts"
)

// Pipeline runs the three generation steps in fixed order: outline,
// script, hashtags. Each step consumes the previous step's output, so
// execution is strictly sequential.
type Pipeline struct {
	llm llm.Client
}

func NewPipeline(client llm.Client) *Pipeline {
	return &Pipeline{llm: client}
}

// Run validates the request and executes the chain. The first failing
// step records its error on the returned Generation and short-circuits
// the rest; a non-200 API response fails its step the same way a
// transport fault does.
func (p *Pipeline) Run(ctx context.Context, req Request) *Generation {
	gen := &Generation{Request: req}

	if err := req.Validate(); err != nil {
		gen.Err = err
		return gen
	}

	steps := []struct {
		name string
		fn   func(context.Context, *Generation) error
	}{
		{"outline", p.outlineStep},
		{"script", p.scriptStep},
		{"hashtags", p.hashtagsStep},
	}

	for _, step := range steps {
		slog.Info("Generating "+step.name+"...", "topic", req.Topic)
		if err := step.fn(ctx, gen); err != nil {
			gen.Err = fmt.Errorf("generate %s: %w", step.name, err)
			return gen
		}
	}

	return gen
}

func (p *Pipeline) outlineStep(ctx context.Context, gen *Generation) error {
	outline, err := p.llm.GenerateOutline(ctx, prompts.OutlineParams{
		Topic:    gen.Topic,
		Duration: gen.Duration,
		Tone:     gen.Tone,
		Platform: gen.PlatformLabel(),
		Language: gen.Language,
	})
	if err != nil {
		return err
	}
	gen.Outline = outline
	return nil
}

func (p *Pipeline) scriptStep(ctx context.Context, gen *Generation) error {
	script, err := p.llm.GenerateScript(ctx, prompts.ScriptParams{
		Outline:  gen.Outline,
		Topic:    gen.Topic,
		Duration: gen.Duration,
		Tone:     gen.Tone,
		Platform: gen.PlatformLabel(),
		Language: gen.Language,
	})
	if err != nil {
		return err
	}
	gen.Script = script
	return nil
}

func (p *Pipeline) hashtagsStep(ctx context.Context, gen *Generation) error {
	hashtags, err := p.llm.GenerateHashtags(ctx, prompts.HashtagsParams{
		Script:   gen.Script,
		Topic:    gen.Topic,
		Platform: gen.PlatformLabel(),
		Language: gen.Language,
	})
	if err != nil {
		return err
	}
	gen.Hashtags = hashtags
	return nil
}
