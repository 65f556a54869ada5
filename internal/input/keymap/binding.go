package keymap

import "github.com/dshills/diskview/internal/input/chord"

// Binding maps one or more synonymous chords to a single action.
type Binding struct {
	// Chords that trigger this binding.
	Chords []chord.Chord

	// Action selected by the chords.
	Action Action

	// Description provides a short legend text (e.g., "quit").
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// Bind creates a binding for the given chords.
func Bind(action Action, chords ...chord.Chord) Binding {
	return Binding{Chords: chords, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category, keeping first-seen order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
