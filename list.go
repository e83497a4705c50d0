package nbt

import (
	"fmt"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// ListTag is a homogeneous, ordered sequence of unnamed tags. Its element
// type is fixed by the first element inserted into an untyped list (or
// explicitly via NewListOf or SetElementType) and is TagUnknown until then;
// Clear resets it to TagUnknown.
type ListTag struct {
	baseTag
	elemType TagType
	items    []Tag
}

// NewList creates an empty ListTag whose element type resolves on first
// insertion.
func NewList(name string) *ListTag {
	return &ListTag{baseTag: baseTag{name: name}, elemType: TagUnknown}
}

// NewListOf creates an empty ListTag pinned to elemType up front, useful
// when the caller wants an empty typed list to round-trip instead of
// decaying to TagUnknown.
func NewListOf(name string, elemType TagType) *ListTag {
	return &ListTag{baseTag: baseTag{name: name}, elemType: elemType}
}

func (t *ListTag) Type() TagType { return TagList }

func (t *ListTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *ListTag) Path() string { return buildPath(t) }

// ElementType reports the list's fixed element type, or TagUnknown if the
// list is empty and untyped.
func (t *ListTag) ElementType() TagType { return t.elemType }

// SetElementType pins the list's declared element type to elemType.
// Returns ErrFormatError if elemType is not a valid tag code (TagUnknown
// is accepted as the empty-list placeholder), or if the list already
// holds elements and elemType disagrees with their established type.
func (t *ListTag) SetElementType(elemType TagType) error {
	if !validWireType(elemType) && elemType != TagUnknown {
		return utils.WrapError(fmt.Sprintf("list set element type: %d is not a valid tag type", uint8(elemType)), errs.FormatError)
	}
	if len(t.items) > 0 && elemType != t.elemType {
		return utils.WrapError(fmt.Sprintf("list set element type: list already holds %s elements", t.elemType), errs.FormatError)
	}
	t.elemType = elemType
	return nil
}

// Length reports the number of elements.
func (t *ListTag) Length() int { return len(t.items) }

// At returns the element at index i, or nil if out of range.
func (t *ListTag) At(i int) Tag {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// Items returns the elements in order.
func (t *ListTag) Items() []Tag {
	out := make([]Tag, len(t.items))
	copy(out, t.items)
	return out
}

// Push appends elem, fixing the list's element type on the first call.
// Returns ErrFormatError if elem is named or on a type mismatch.
func (t *ListTag) Push(elem Tag) error {
	return t.Insert(len(t.items), elem)
}

// Insert places elem at index i, shifting later elements right. Returns
// ErrFormatError if elem is named (list elements must be unnamed before
// insertion — callers must clear the name themselves), if elem's type
// doesn't match the list's established element type, or if i is out of
// [0, Length()].
func (t *ListTag) Insert(i int, elem Tag) error {
	if i < 0 || i > len(t.items) {
		return utils.WrapError(fmt.Sprintf("list insert: index %d out of range [0,%d]", i, len(t.items)), errs.FormatError)
	}
	if elem.Name() != "" {
		return utils.WrapError(fmt.Sprintf("list insert: element %q must be unnamed", elem.Name()), errs.FormatError)
	}
	if err := checkNotSelfOrAncestor(t, elem); err != nil {
		return err
	}
	if t.elemType == TagUnknown {
		t.elemType = elem.Type()
	} else if elem.Type() != t.elemType {
		return utils.WrapError(fmt.Sprintf("list insert: element type %s does not match list type %s", elem.Type(), t.elemType), errs.FormatError)
	}

	detach(elem)
	elem.setParent(t)

	t.items = append(t.items, nil)
	copy(t.items[i+1:], t.items[i:])
	t.items[i] = elem
	return nil
}

// RemoveAt deletes the element at index i, if in range.
func (t *ListTag) RemoveAt(i int) {
	if i < 0 || i >= len(t.items) {
		return
	}
	t.items[i].setParent(nil)
	t.items = append(t.items[:i], t.items[i+1:]...)
}

// Remove deletes the first occurrence of elem, if present.
func (t *ListTag) Remove(elem Tag) {
	t.removeTag(elem)
}

func (t *ListTag) removeTag(elem Tag) {
	if i := t.indexOf(elem); i >= 0 {
		t.RemoveAt(i)
	}
}

// IndexOf returns the index of elem within this list, or -1.
func (t *ListTag) IndexOf(elem Tag) int { return t.indexOf(elem) }

func (t *ListTag) indexOf(elem Tag) int {
	for i, c := range t.items {
		if c == elem {
			return i
		}
	}
	return -1
}

// Includes reports whether elem is a direct element of this list.
func (t *ListTag) Includes(elem Tag) bool { return t.indexOf(elem) >= 0 }

// Clear removes all elements and resets the element type to TagUnknown.
func (t *ListTag) Clear() {
	for _, c := range t.items {
		c.setParent(nil)
	}
	t.items = nil
	t.elemType = TagUnknown
}

func (t *ListTag) Clone() Tag {
	out := NewListOf(t.name, t.elemType)
	for _, c := range t.items {
		_ = out.Push(c.Clone())
	}
	return out
}

func (t *ListTag) prettyLines(indent string, depth int) []string {
	header := prettyHeader(indent, depth, "List", t.name, fmt.Sprintf("%d entries of type %s", len(t.items), t.elemType))
	lines := []string{header, prettyBrace(indent, depth, "{")}
	for _, c := range t.items {
		lines = append(lines, c.prettyLines(indent, depth+1)...)
	}
	lines = append(lines, prettyBrace(indent, depth, "}"))
	return lines
}
