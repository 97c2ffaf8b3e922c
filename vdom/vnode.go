// Package vdom holds the virtual DOM tree produced by component Render
// methods.
package vdom

import (
	"fmt"
	"sort"
	"strings"
)

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // Text content rendered before the children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
	}
}

// Element creates a VNode with the given children.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Div creates a <div> VNode.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return Element("div", attrs, children...)
}

// Paragraph creates a <p> VNode holding text.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// List creates a <ul> VNode with one <li> per item.
func List(attrs map[string]any, items ...string) *VNode {
	children := make([]*VNode, 0, len(items))
	for _, item := range items {
		children = append(children, NewVNode("li", nil, nil, item))
	}
	return Element("ul", attrs, children...)
}

// FindByID returns the first node in the tree whose "id" attribute is id.
func (v *VNode) FindByID(id string) *VNode {
	if v == nil {
		return nil
	}
	if got, ok := v.Attributes["id"]; ok && got == id {
		return v
	}
	for _, c := range v.Children {
		if n := c.FindByID(id); n != nil {
			return n
		}
	}
	return nil
}

// String renders the tree as compact HTML.
func (v *VNode) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v *VNode) write(b *strings.Builder) {
	if v == nil {
		return
	}
	b.WriteString("<" + v.Tag)

	keys := make([]string, 0, len(v.Attributes))
	for k := range v.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%q", k, fmt.Sprint(v.Attributes[k]))
	}
	b.WriteString(">")

	b.WriteString(v.Content)
	for _, c := range v.Children {
		c.write(b)
	}
	b.WriteString("</" + v.Tag + ">")
}
