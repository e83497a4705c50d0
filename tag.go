package nbt

import (
	"fmt"
	"strings"

	"github.com/gonbt/nbt/internal/errs"
	"github.com/gonbt/nbt/internal/utils"
)

// Tag is the common interface implemented by every node in an NBT tree:
// the twelve scalar/array/container kinds. End is only a wire marker and
// has no Tag implementation.
//
// A Tag's Parent is a non-owning back-reference set automatically when the
// tag is inserted into a Compound or List; it is cleared when the tag is
// removed. A Tag may only have one parent at a time — inserting it into a
// second container detaches it from the first.
type Tag interface {
	// Type reports the tag's concrete kind.
	Type() TagType

	// Name returns the tag's name. Unnamed (e.g. list-element) tags
	// return "".
	Name() string

	// SetName renames the tag. Returns ErrFormatError if the tag is
	// currently held by a Compound and the new name collides with a
	// sibling.
	SetName(name string) error

	// Parent returns the Compound or List currently holding this tag, or
	// nil if the tag is unattached (e.g. a fresh root).
	Parent() Tag

	// Path returns the dotted path from the document root to this tag,
	// e.g. "level.player.inventory[3].id".
	Path() string

	// Clone returns a deep, detached copy of this tag and its subtree.
	Clone() Tag

	setParent(p Tag)
	prettyLines(indent string, depth int) []string
}

// baseTag holds the fields common to every concrete tag type.
type baseTag struct {
	name   string
	parent Tag
}

func (b *baseTag) Name() string { return b.name }

func (b *baseTag) Parent() Tag { return b.parent }

func (b *baseTag) setParent(p Tag) { b.parent = p }

// buildPath assembles the full dotted/bracketed path for self by walking
// up through parent, joining Compound segments with "." and leaving List
// index segments bracket-adjacent.
func buildPath(self Tag) string {
	var segs []string
	cur := self
	for cur != nil {
		seg := segmentFor(cur)
		if seg != "" {
			segs = append([]string{seg}, segs...)
		}
		p := cur.Parent()
		cur = p
	}
	return joinSegments(segs)
}

func segmentFor(t Tag) string {
	parent := t.Parent()
	if parent == nil {
		return t.Name()
	}
	if lt, ok := parent.(*ListTag); ok {
		idx := lt.indexOf(t)
		if idx < 0 {
			return ""
		}
		return fmt.Sprintf("[%d]", idx)
	}
	return t.Name()
}

// setNameChecked applies a rename that obeys the tree's structural
// invariants: a tag held by a List must stay unnamed, and a tag held by a
// Compound must not collide with a sibling's name.
func setNameChecked(self Tag, b *baseTag, name string) error {
	switch p := b.parent.(type) {
	case *ListTag:
		if name != "" {
			return utils.WrapError("set name: elements of a List must be unnamed", errs.FormatError)
		}
	case *CompoundTag:
		if err := p.checkRename(self, name); err != nil {
			return err
		}
		if i, ok := p.index[b.name]; ok && name != b.name {
			delete(p.index, b.name)
			p.index[name] = i
		}
	}
	b.name = name
	return nil
}

// checkNotSelfOrAncestor rejects inserting container into itself, or
// inserting one of container's own ancestors into it (which would create a
// cycle unreachable from the document root).
func checkNotSelfOrAncestor(container, child Tag) error {
	if child == container {
		return utils.WrapError("insert: a container cannot contain itself", errs.FormatError)
	}
	for anc := container.Parent(); anc != nil; anc = anc.Parent() {
		if anc == child {
			return utils.WrapError("insert: cannot insert an ancestor into its own descendant", errs.FormatError)
		}
	}
	return nil
}

func joinSegments(segs []string) string {
	var b strings.Builder
	for i, s := range segs {
		if strings.HasPrefix(s, "[") {
			b.WriteString(s)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s)
	}
	return b.String()
}
