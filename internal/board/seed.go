package board

import (
	"strings"

	"github.com/manav03panchal/countdown/internal/errors"
	"github.com/manav03panchal/countdown/internal/model"
)

// SpecSeparator splits the fields of a --timer value.
const SpecSeparator = "|"

// ParseSpec splits "Title|Category|Target" into its three fields.
func ParseSpec(spec string) (title, category, target string, err error) {
	parts := strings.Split(spec, SpecSeparator)
	if len(parts) != 3 {
		return "", "", "", errors.NewUserErrorWithField("timer", spec,
			"Timer must be given as Title|Category|Target",
			"").WithCause(errors.ErrInvalidSpec)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}

// Seed adds one timer per spec. It stops at the first invalid spec; timers
// added before it are kept.
func (b *Board) Seed(specs []string) ([]*model.Timer, error) {
	added := make([]*model.Timer, 0, len(specs))
	for _, spec := range specs {
		title, category, target, err := ParseSpec(spec)
		if err != nil {
			return added, err
		}
		t, err := b.Add(title, category, target)
		if err != nil {
			return added, err
		}
		added = append(added, t)
	}
	return added, nil
}
