package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"reelscript/internal/app"
)

// promptForRequest collects generation inputs interactively. The passed
// request's fields seed the form defaults.
func promptForRequest(req *app.Request) error {
	durations := make([]huh.Option[int], 0, (app.MaxDuration-app.MinDuration)/10+1)
	for d := app.MinDuration; d <= app.MaxDuration; d += 10 {
		durations = append(durations, huh.NewOption(fmt.Sprintf("%d seconds", d), d))
	}

	platforms := append([]string{app.AnyPlatform}, app.Platforms...)
	platform := req.Platform
	if platform == "" {
		platform = app.AnyPlatform
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Topic").
				Placeholder("e.g. morning routines that actually work").
				Value(&req.Topic).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("topic is required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Duration").
				Options(durations...).
				Value(&req.Duration),
			huh.NewSelect[string]().
				Title("Tone").
				Options(huh.NewOptions(app.Tones...)...).
				Value(&req.Tone),
			huh.NewSelect[string]().
				Title("Platform").
				Options(huh.NewOptions(platforms...)...).
				Value(&platform),
			huh.NewSelect[string]().
				Title("Language").
				Options(huh.NewOptions(app.Languages...)...).
				Value(&req.Language),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if platform == app.AnyPlatform {
		req.Platform = ""
	} else {
		req.Platform = platform
	}

	return nil
}
