// Package dom provides the element-tree helpers used when expanding UI
// documents. Documents are held as etree element trees; this package adds
// the handful of queries the expansion engine needs on top of them.
package dom

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Read decodes an XML document and returns its root element.
func Read(r io.Reader) (*etree.Element, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	return doc.Root(), nil
}

// ReadString decodes an XML document held in s.
func ReadString(s string) (*etree.Element, error) {
	return Read(strings.NewReader(s))
}

// Children returns the direct element children of el in document order.
func Children(el *etree.Element) []*etree.Element {
	if el == nil {
		return nil
	}
	return el.ChildElements()
}

// ChildrenByTag groups the direct element children of el by qualified tag
// name (namespace prefix included). When a tag repeats, the last occurrence
// wins.
func ChildrenByTag(el *etree.Element) map[string]*etree.Element {
	children := make(map[string]*etree.Element)
	for _, child := range Children(el) {
		children[child.FullTag()] = child
	}
	return children
}

// Texts returns the direct text-node children of el.
func Texts(el *etree.Element) []*etree.CharData {
	var texts []*etree.CharData
	for _, token := range el.Child {
		if cd, ok := token.(*etree.CharData); ok {
			texts = append(texts, cd)
		}
	}
	return texts
}

// TextContent concatenates every text node below el, in document order.
func TextContent(el *etree.Element) string {
	var sb strings.Builder
	appendText(&sb, el)
	return sb.String()
}

func appendText(sb *strings.Builder, el *etree.Element) {
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			appendText(sb, t)
		}
	}
}

// Attr returns the value of the attribute key on el and whether it is set.
func Attr(el *etree.Element, key string) (string, bool) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// HasDescendant reports whether any element strictly below el has the
// given qualified tag.
func HasDescendant(el *etree.Element, tag string) bool {
	for _, child := range el.ChildElements() {
		if child.FullTag() == tag || HasDescendant(child, tag) {
			return true
		}
	}
	return false
}

// Replace swaps old for replacement in old's parent. It returns false when
// old is detached.
func Replace(old, replacement *etree.Element) bool {
	parent := old.Parent()
	if parent == nil {
		return false
	}
	for i, token := range parent.Child {
		if token == etree.Token(old) {
			parent.RemoveChildAt(i)
			parent.InsertChildAt(i, replacement)
			return true
		}
	}
	return false
}
