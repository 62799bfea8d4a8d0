package llm

import (
	"context"

	"reelscript/pkg/prompts"
)

// Client generates the three stages of a script: outline, full script,
// then hashtags and caption. Implementations return an error for any
// failed completion, including non-200 API responses.
type Client interface {
	GenerateOutline(ctx context.Context, params prompts.OutlineParams) (string, error)
	GenerateScript(ctx context.Context, params prompts.ScriptParams) (string, error)
	GenerateHashtags(ctx context.Context, params prompts.HashtagsParams) (string, error)
}
