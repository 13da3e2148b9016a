package grouping

import (
	"io"

	"github.com/goccy/go-json"
)

// Pair is a labelled line of text.
type Pair struct {
	Label string
	Text  string
}

// PairLabel is the grouping key of a Pair.
func PairLabel(p Pair) string { return p.Label }

// DemoPairs is the fixed dataset of the grouping demo.
func DemoPairs() []Pair {
	return []Pair{
		{"a", "value a 1"},
		{"a", "value a 2"},
		{"b", "value b 1"},
		{"b", "value b 2"},
		{"c", "value c 1"},
		{"c", "value c 2"},
	}
}

type groupView struct {
	Key           string      `json:"key"`
	GroupedValues [][2]string `json:"grouped_values"`
}

// Render writes groups as an indented JSON list of
// {"key": ..., "grouped_values": [[label, text], ...]} objects.
func Render(w io.Writer, groups []Group[string, Pair]) error {
	views := make([]groupView, 0, len(groups))
	for _, g := range groups {
		v := groupView{Key: g.Key, GroupedValues: make([][2]string, 0, len(g.Values))}
		for _, p := range g.Values {
			v.GroupedValues = append(v.GroupedValues, [2]string{p.Label, p.Text})
		}
		views = append(views, v)
	}

	b, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	_, err = w.Write(b)
	return err
}
