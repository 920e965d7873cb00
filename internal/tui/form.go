package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/parser"
	"github.com/manav03panchal/countdown/internal/validate"
)

// selectCategoryLabel is the empty first entry of the category selector.
const selectCategoryLabel = "Select a category"

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title    string
	category string
	target   string
}

func (fb *formBindings) reset() {
	fb.title = ""
	fb.category = ""
	fb.target = ""
}

func categoryOptions(categories model.CategoryTable) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption(selectCategoryLabel, "")}
	for _, name := range categories.Names() {
		opts = append(opts, huh.NewOption(name, name))
	}
	return opts
}

func newTimerForm(fb *formBindings, categories model.CategoryTable, now func() time.Time, width int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("What are you counting down to?").
				CharLimit(validate.MaxTitleLength).
				Value(&fb.title).
				Validate(validate.Title),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions(categories)...).
				Value(&fb.category).
				Validate(func(s string) error { return validate.NonEmpty("Category", s) }),
			huh.NewInput().
				Title("Target").
				Placeholder(parser.FormatDateTimeLocal(now().Add(time.Hour))+"  or  +5m, tomorrow 9am").
				Value(&fb.target).
				Validate(validateTarget(now)),
		),
	).WithShowHelp(false)

	if width > 0 {
		form = form.WithWidth(formWidth(width))
	}
	return form
}

func validateTarget(now func() time.Time) func(string) error {
	return func(s string) error {
		if err := validate.NonEmpty("Target", s); err != nil {
			return err
		}
		if _, err := parser.ParseTarget(s, now()); err != nil {
			return fmt.Errorf("unrecognized date/time, try %s", parser.TargetExamples[0])
		}
		return nil
	}
}

func formWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}
