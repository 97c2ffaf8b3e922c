package trackby

import (
	"testing"

	"github.com/vcrobe/nojs-params/testcomponents"
	"github.com/vcrobe/nojs-params/vdom"
)

func renderedItems(t *testing.T, vnode *vdom.VNode) []string {
	t.Helper()
	ul := vnode.FindByID("items")
	if ul == nil {
		t.Fatalf("Expected <ul id=items> in the tree")
	}
	out := make([]string, 0, len(ul.Children))
	for _, li := range ul.Children {
		out = append(out, li.Content)
	}
	return out
}

// TestItemList_InitialRender verifies the items produced by OnInit are
// rendered without counting as a reload.
func TestItemList_InitialRender(t *testing.T) {
	// Arrange
	page := &ItemsPage{}
	renderer := testcomponents.NewTestRenderer(page)

	// Act
	vnode := renderer.RenderRoot()

	// Assert
	items := renderedItems(t, vnode)
	if len(items) != 3 || items[0] != "101: Alpha" {
		t.Errorf("Expected 3 items starting with '101: Alpha', got %v", items)
	}
	if got := vnode.FindByID("reloads").Content; got != "Reloads: 0" {
		t.Errorf("Expected 'Reloads: 0', got '%s'", got)
	}
}

// TestItemList_RenameIsNotAReload verifies that the ID comparer ignores
// renames while the new names still render.
func TestItemList_RenameIsNotAReload(t *testing.T) {
	page := &ItemsPage{}
	renderer := testcomponents.NewTestRenderer(page)
	renderer.RenderRoot()

	page.RenameItem(1, "Bravo")

	vnode := renderer.GetCurrentVDOM()
	if got := renderedItems(t, vnode)[1]; got != "102: Bravo" {
		t.Errorf("Expected '102: Bravo', got '%s'", got)
	}
	if got := vnode.FindByID("reloads").Content; got != "Reloads: 0" {
		t.Errorf("Expected a rename not to reload, got '%s'", got)
	}
}

// TestItemList_AddAndClear verifies that changing the ID sequence reloads.
func TestItemList_AddAndClear(t *testing.T) {
	page := &ItemsPage{}
	renderer := testcomponents.NewTestRenderer(page)
	renderer.RenderRoot()

	page.AddItem("Delta")
	vnode := renderer.GetCurrentVDOM()
	if got := renderedItems(t, vnode); len(got) != 4 || got[3] != "104: Delta" {
		t.Errorf("Expected '104: Delta' appended, got %v", got)
	}
	if got := vnode.FindByID("reloads").Content; got != "Reloads: 1" {
		t.Errorf("Expected 'Reloads: 1', got '%s'", got)
	}

	page.ClearItems()
	vnode = renderer.GetCurrentVDOM()
	if got := renderedItems(t, vnode); len(got) != 0 {
		t.Errorf("Expected no items, got %v", got)
	}
	if got := vnode.FindByID("reloads").Content; got != "Reloads: 2" {
		t.Errorf("Expected 'Reloads: 2', got '%s'", got)
	}
}
