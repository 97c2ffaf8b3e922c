// Package profile demonstrates tracked parameters flowing from a page into a
// child card and back through a two-way binding.
package profile

import (
	"fmt"

	"github.com/vcrobe/nojs-params/params"
	"github.com/vcrobe/nojs-params/runtime"
	"github.com/vcrobe/nojs-params/vdom"
)

// CardProps are the parameters a Card is rendered with.
type CardProps struct {
	Name        string
	Tags        []string
	NameChanged params.EventCallback[string]

	// CaseInsensitive is read once, when the card is constructed.
	CaseInsensitive bool
}

// Card shows a user's name and tags and keeps a history of name changes.
type Card struct {
	runtime.ComponentBase
	CardProps

	History    []string
	TagChanges int

	name *params.Tracker[string]
}

// NewCard constructs a card and declares its parameters.
func NewCard(props CardProps) *Card {
	c := &Card{CardProps: props}
	if err := c.DeclareParameters(c.declare); err != nil {
		panic(err)
	}
	return c
}

func (c *Card) declare(s *params.Scope) error {
	nb, err := params.Track(s, "Name", func() string { return c.Name })
	if err != nil {
		return err
	}
	if c.CaseInsensitive {
		nb.Comparer(params.EqualFold())
	}
	c.name, err = nb.
		OnChange(func(prev, next string) error {
			c.History = append(c.History, fmt.Sprintf("%s -> %s", prev, next))
			return nil
		}).
		Bind(func() params.EventCallback[string] { return c.NameChanged }).
		Build()
	if err != nil {
		return err
	}

	tb, err := params.Track(s, "Tags", func() []string { return c.Tags })
	if err != nil {
		return err
	}
	_, err = tb.OnChange(func(prev, next []string) error {
		c.TagChanges++
		return nil
	}).Build()
	return err
}

// TrackedName returns the last synchronized name.
func (c *Card) TrackedName() string {
	return c.name.Value()
}

// ApplyProps copies the parameters of a freshly rendered card.
func (c *Card) ApplyProps(source runtime.Component) {
	src := source.(*Card)
	c.Name = src.Name
	c.Tags = src.Tags
	c.NameChanged = src.NameChanged
}

func (c *Card) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "card"},
		vdom.Paragraph("Name: "+c.name.Value(), map[string]any{"id": "name"}),
		vdom.List(map[string]any{"id": "tags"}, c.Tags...),
		vdom.Paragraph(fmt.Sprintf("Changes: %d", len(c.History)), map[string]any{"id": "changes"}),
	)
}
