package lesson

import (
	"fmt"
	"sort"

	"github.com/san-kum/flowlab/internal/viz"
)

// Output is what one compute cell produces: result lines, an optional XY
// series to plot, and an optional canvas rendering.
type Output struct {
	Text          []string
	Series        []float64
	SeriesCaption string
	Canvas        *viz.Canvas
}

func (o *Output) Printf(format string, args ...any) {
	o.Text = append(o.Text, fmt.Sprintf(format, args...))
}

// Cell is one step of a lesson: prose followed by an optional computation.
type Cell struct {
	Prose   string
	Compute func() (*Output, error)
}

// Lesson is an ordered cell sequence, the notebook analog.
type Lesson struct {
	Name  string
	Title string
	Cells []Cell
}

var registry = map[string]*Lesson{}

func register(l *Lesson) {
	registry[l.Name] = l
}

// Get returns a built-in lesson by name.
func Get(name string) (*Lesson, error) {
	l, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("lesson: unknown lesson %q (available: %v)", name, Names())
	}
	return l, nil
}

// Names lists the built-in lessons in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
