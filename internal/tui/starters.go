package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/repoclone/internal/domain"
	"github.com/quantmind-br/repoclone/internal/utils"
)

// customChoice is the menu value for entering a URL by hand
const customChoice = "\x00custom"

// ErrCancelled is returned when the user leaves the menu
var ErrCancelled = errors.New("selection cancelled")

// StarterOptions builds the menu entries, one per starter plus a custom URL entry
func StarterOptions(starters []domain.Starter) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(starters)+1)
	for _, s := range starters {
		options = append(options, huh.NewOption(fmt.Sprintf("%s  %s", s.Name, DescriptionStyle.Render(s.URL)), s.Name))
	}
	return append(options, huh.NewOption("Custom URL…", customChoice))
}

// SelectStarter asks the user to pick a starter. Picking the custom entry
// prompts for a URL and returns a starter named after the repository.
func SelectStarter(starters []domain.Starter, accessible bool) (domain.Starter, error) {
	var choice string
	theme := GetTheme()
	if accessible {
		theme = GetAccessibleTheme()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a starter").
				Description("The project is cloned into a directory named after it").
				Options(StarterOptions(starters)...).
				Value(&choice),
		),
	).WithTheme(theme).WithAccessible(accessible)

	if err := form.Run(); err != nil {
		return domain.Starter{}, wrapFormError(err)
	}

	if choice != customChoice {
		return findStarter(starters, choice)
	}

	var url string
	input := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository URL").
				Placeholder("https://github.com/owner/repo.git").
				Value(&url).
				Validate(ValidateSourceURL),
		),
	).WithTheme(theme).WithAccessible(accessible)

	if err := input.Run(); err != nil {
		return domain.Starter{}, wrapFormError(err)
	}
	return CustomStarter(url), nil
}

// CustomStarter names an ad-hoc starter after its repository
func CustomStarter(url string) domain.Starter {
	url = strings.TrimSpace(url)
	return domain.Starter{Name: utils.RepoNameFromURL(url), URL: url}
}

func findStarter(starters []domain.Starter, name string) (domain.Starter, error) {
	for _, s := range starters {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Starter{}, fmt.Errorf("%w: %s", domain.ErrUnknownStarter, name)
}

func wrapFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("starter menu: %w", err)
}
