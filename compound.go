package nbt

import (
	"fmt"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// CompoundTag is an ordered, name-unique map of child tags. Insertion
// order is preserved for iteration and encoding; lookup by name is O(1).
type CompoundTag struct {
	baseTag
	order []Tag
	index map[string]int
}

// NewCompound creates an empty, named CompoundTag.
func NewCompound(name string) *CompoundTag {
	return &CompoundTag{
		baseTag: baseTag{name: name},
		index:   make(map[string]int),
	}
}

func (t *CompoundTag) Type() TagType { return TagCompound }

func (t *CompoundTag) SetName(name string) error { return setNameChecked(t, &t.baseTag, name) }

func (t *CompoundTag) Path() string { return buildPath(t) }

// Size reports the number of direct children.
func (t *CompoundTag) Size() int { return len(t.order) }

// Names returns the child names in insertion order.
func (t *CompoundTag) Names() []string {
	out := make([]string, len(t.order))
	for i, c := range t.order {
		out[i] = c.Name()
	}
	return out
}

// Tags returns the direct children in insertion order.
func (t *CompoundTag) Tags() []Tag {
	out := make([]Tag, len(t.order))
	copy(out, t.order)
	return out
}

// Has reports whether a child with the given name exists.
func (t *CompoundTag) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Get returns the named child, or nil if absent.
func (t *CompoundTag) Get(name string) Tag {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.order[i]
}

// Put inserts the child named child.Name(). Returns ErrFormatError if
// child is unnamed, is this compound itself, is an ancestor of this
// compound, or a sibling already holds that name.
func (t *CompoundTag) Put(child Tag) error {
	name := child.Name()
	if name == "" {
		return utils.WrapError("compound put: child must be named", errs.FormatError)
	}
	if err := checkNotSelfOrAncestor(t, child); err != nil {
		return err
	}
	if i, exists := t.index[name]; exists {
		if t.order[i] == child {
			return nil
		}
		return utils.WrapError(fmt.Sprintf("compound put: name %q already in use", name), errs.FormatError)
	}
	detach(child)
	child.setParent(t)
	t.index[name] = len(t.order)
	t.order = append(t.order, child)
	return nil
}

// Delete removes the named child, if present, and detaches it.
func (t *CompoundTag) Delete(name string) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	t.order[i].setParent(nil)
	t.order = append(t.order[:i], t.order[i+1:]...)
	delete(t.index, name)
	for n, idx := range t.index {
		if idx > i {
			t.index[n] = idx - 1
		}
	}
}

// Clear removes all children, detaching each.
func (t *CompoundTag) Clear() {
	for _, c := range t.order {
		c.setParent(nil)
	}
	t.order = nil
	t.index = make(map[string]int)
}

// checkRename reports whether renaming child (already held by t, or about
// to be attached to t) to newName would collide with a different sibling.
func (t *CompoundTag) checkRename(child Tag, newName string) error {
	if newName == "" {
		return utils.WrapError("compound: child name must not be empty", errs.FormatError)
	}
	if i, exists := t.index[newName]; exists && t.order[i] != child {
		return utils.WrapError(fmt.Sprintf("compound: name %q already in use", newName), errs.FormatError)
	}
	return nil
}

func (t *CompoundTag) Clone() Tag {
	out := NewCompound(t.name)
	for _, c := range t.order {
		_ = out.Put(c.Clone())
	}
	return out
}

func (t *CompoundTag) prettyLines(indent string, depth int) []string {
	header := prettyHeader(indent, depth, "Compound", t.name, fmt.Sprintf("%d entries", len(t.order)))
	lines := []string{header, prettyBrace(indent, depth, "{")}
	for _, c := range t.order {
		lines = append(lines, c.prettyLines(indent, depth+1)...)
	}
	lines = append(lines, prettyBrace(indent, depth, "}"))
	return lines
}

// detach removes child from whichever container currently holds it.
func detach(child Tag) {
	switch p := child.Parent().(type) {
	case *CompoundTag:
		p.Delete(child.Name())
	case *ListTag:
		p.removeTag(child)
	}
}
