package model

import "strings"

// Built-in category names.
const (
	CategoryMeeting  = "Meeting"
	CategoryBirthday = "Birthday"
	CategoryReminder = "Reminder"
)

// Category maps a display label to a color.
type Category struct {
	Name  string `mapstructure:"name" yaml:"name" json:"name"`
	Color string `mapstructure:"color" yaml:"color" json:"color"` // "#RRGGBB", empty for none
}

// CategoryTable is an ordered set of categories. Order is the order shown in
// selectors.
type CategoryTable []Category

// Lookup returns the color for name. Unknown names return the empty color.
func (ct CategoryTable) Lookup(name string) string {
	for _, c := range ct {
		if c.Name == name {
			return c.Color
		}
	}
	return ""
}


// Names returns the category labels in table order.
func (ct CategoryTable) Names() []string {
	names := make([]string, 0, len(ct))
	for _, c := range ct {
		names = append(names, c.Name)
	}
	return names
}

// Merge returns a copy of ct with entries from other added or overriding
// colors by case-insensitive name.
func (ct CategoryTable) Merge(other CategoryTable) CategoryTable {
	out := make(CategoryTable, len(ct))
	copy(out, ct)
	for _, o := range other {
		if o.Name == "" {
			continue
		}
		replaced := false
		for i := range out {
			if strings.EqualFold(out[i].Name, o.Name) {
				out[i].Color = o.Color
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// DefaultCategories returns the built-in category table.
func DefaultCategories() CategoryTable {
	return CategoryTable{
		{Name: CategoryMeeting, Color: "#3B82F6"},  // Blue
		{Name: CategoryBirthday, Color: "#EF4444"}, // Red
		{Name: CategoryReminder, Color: "#10B981"}, // Green
	}
}
