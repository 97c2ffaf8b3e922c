package trackby

import (
	"fmt"

	"github.com/vcrobe/nojs-params/params"
	"github.com/vcrobe/nojs-params/runtime"
	"github.com/vcrobe/nojs-params/vdom"
)

// Item represents a data item with ID for trackBy
type Item struct {
	ID   int
	Name string
}

// ItemList renders items it receives from its parent. Its Items parameter is
// compared by the sequence of IDs, so renaming an item is not a change while
// adding, removing or reordering items is.
type ItemList struct {
	runtime.ComponentBase
	Items []Item

	Reloads int
}

// NewItemList constructs an ItemList and declares its parameters.
func NewItemList(items []Item) *ItemList {
	l := &ItemList{Items: items}
	err := l.DeclareParameters(func(s *params.Scope) error {
		b, err := params.Track(s, "Items", func() []Item { return l.Items })
		if err != nil {
			return err
		}
		_, err = b.Comparer(sameIDs).OnChange(func(prev, next []Item) error {
			l.Reloads++
			return nil
		}).Build()
		return err
	})
	if err != nil {
		panic(err)
	}
	return l
}

func sameIDs(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func (l *ItemList) ApplyProps(source runtime.Component) {
	l.Items = source.(*ItemList).Items
}

func (l *ItemList) Render(r runtime.Renderer) *vdom.VNode {
	names := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		names = append(names, fmt.Sprintf("%d: %s", it.ID, it.Name))
	}
	return vdom.Div(nil,
		vdom.List(map[string]any{"id": "items"}, names...),
		vdom.Paragraph(fmt.Sprintf("Reloads: %d", l.Reloads), map[string]any{"id": "reloads"}),
	)
}

// ItemsPage owns the items and renders them through an ItemList.
type ItemsPage struct {
	runtime.ComponentBase
	Items []Item
}

func (p *ItemsPage) OnInit() {
	p.Items = []Item{
		{ID: 101, Name: "Alpha"},
		{ID: 102, Name: "Beta"},
		{ID: 103, Name: "Gamma"},
	}
}

func (p *ItemsPage) AddItem(name string) {
	newID := 100 + len(p.Items) + 1
	p.Items = append(p.Items, Item{
		ID:   newID,
		Name: name,
	})
	p.StateHasChanged()
}

// RenameItem renames the item at index i in a copy of the slice.
func (p *ItemsPage) RenameItem(i int, name string) {
	items := append([]Item(nil), p.Items...)
	items[i].Name = name
	p.Items = items
	p.StateHasChanged()
}

func (p *ItemsPage) ClearItems() {
	p.Items = []Item{}
	p.StateHasChanged()
}

func (p *ItemsPage) Render(r runtime.Renderer) *vdom.VNode {
	return r.RenderChild("list", NewItemList(p.Items))
}
