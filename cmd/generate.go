package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"reelscript/internal/app"
	"reelscript/internal/llm/groq"
	"reelscript/pkg/config"
	"reelscript/pkg/prompts"
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginTop(1)

var (
	genTopic    string
	genDuration int
	genTone     string
	genPlatform string
	genLanguage string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a script for a topic",
	Long: `Generate an outline, script, and hashtags for a topic.
Without --topic, an interactive form collects the inputs.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genTopic, "topic", "t", "", "Topic to write about")
	generateCmd.Flags().IntVarP(&genDuration, "duration", "d", app.DefaultDuration, "Target duration in seconds (10-600)")
	generateCmd.Flags().StringVar(&genTone, "tone", app.DefaultTone, "Tone of voice")
	generateCmd.Flags().StringVar(&genPlatform, "platform", "", "Target platform (empty means any)")
	generateCmd.Flags().StringVar(&genLanguage, "language", app.DefaultLanguage, "Output language")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := prompts.Load()
	if err != nil {
		return err
	}

	client, err := groq.NewClient(groq.Config{
		APIKey:      cfg.GroqAPIKey,
		Model:       cfg.Groq.Model,
		MaxTokens:   cfg.Groq.MaxTokens,
		Temperature: *cfg.Groq.Temperature,
		Prompts:     p,
	})
	if err != nil {
		return err
	}

	req := app.Request{
		Topic:    genTopic,
		Duration: genDuration,
		Tone:     genTone,
		Platform: genPlatform,
		Language: genLanguage,
	}

	interactive := isInteractive(genTopic)
	if interactive {
		if err := promptForRequest(&req); err != nil {
			return err
		}
	}

	pipeline := app.NewPipeline(client)

	var gen *app.Generation
	if interactive {
		gen, err = runWithSpinner(ctx, pipeline, req)
	} else {
		gen = pipeline.Run(ctx, req)
	}
	if err != nil {
		return err
	}

	if gen.Err != nil {
		return gen.Err
	}

	printGeneration(gen)
	return nil
}

// isInteractive decides whether to fall back to the form: only when no
// topic was given and stdin is a terminal. With piped stdin a missing
// topic is a plain validation error instead.
func isInteractive(topic string) bool {
	return topic == "" && isatty.IsTerminal(os.Stdin.Fd())
}

// runWithSpinner wraps the blocking pipeline run. An aborted spinner
// (ctrl-c) returns before the action finishes, so its error must be
// checked before the generation is touched.
func runWithSpinner(ctx context.Context, pipeline *app.Pipeline, req app.Request) (*app.Generation, error) {
	var gen *app.Generation
	if err := spinner.New().
		Title("Generating script...").
		Action(func() { gen = pipeline.Run(ctx, req) }).
		Run(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, errors.New("generation cancelled")
	}
	return gen, nil
}

func printGeneration(gen *app.Generation) {
	sections := []struct {
		title string
		body  string
	}{
		{"Script Outline", gen.Outline},
		{"Final Script", gen.Script},
		{"Hashtags & Caption", gen.Hashtags},
	}

	for _, section := range sections {
		fmt.Println(headingStyle.Render(section.title))
		fmt.Println(section.body)
	}
}
