package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/tidenav/internal/ui/theme"
)

// OptionList renders the answers of a question.
// Chosen is -1 until an option has been picked; once set the other
// options are dimmed and the cursor is hidden.
type OptionList struct {
	Labels   []string
	Selected int
	Chosen   int
}

// NewOptionList creates an option list with the cursor on the first entry.
func NewOptionList(labels []string) OptionList {
	return OptionList{
		Labels:   labels,
		Selected: 0,
		Chosen:   -1,
	}
}

// Up moves the cursor up unless an option was already chosen.
func (o OptionList) Up() OptionList {
	if o.Chosen < 0 && o.Selected > 0 {
		o.Selected--
	}
	return o
}

// Down moves the cursor down unless an option was already chosen.
func (o OptionList) Down() OptionList {
	if o.Chosen < 0 && o.Selected < len(o.Labels)-1 {
		o.Selected++
	}
	return o
}

// View renders one line per option.
func (o OptionList) View() string {
	var b strings.Builder
	for i, label := range o.Labels {
		prefix := "  "
		if o.Chosen < 0 && i == o.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, label)

		switch {
		case o.Chosen >= 0 && i == o.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case o.Chosen >= 0:
			b.WriteString(theme.Faded.Render(line))
		case i == o.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
