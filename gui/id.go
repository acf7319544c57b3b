package gui

import (
	"encoding/binary"
	"hash/fnv"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same widget.
type ID uint64

// HashID derives an ID from a salt string with no parent scope.
func HashID(salt string) ID {
	return ID(0).With(salt)
}

// With derives a child ID scoped under id.
// The same parent and salt always produce the same child.
func (id ID) With(salt string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	h.Write(buf[:])
	h.Write([]byte(salt))
	return ID(h.Sum64())
}

// WithInt derives a child ID from an integer salt.
func (id ID) WithInt(n int) ID {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(id))
	binary.LittleEndian.PutUint64(buf[8:], uint64(n))
	h.Write(buf[:])
	return ID(h.Sum64())
}

// GetID generates an ID from a string label.
// The ID is unique within the current ID stack context.
// An auto-incrementing counter differentiates same labels in loops. Each
// scope has its own counter, so widgets in one scope keep their IDs when
// a sibling scope draws a different number of widgets.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	return ctx.CurrentID().With(label).WithInt(int(ctx.idCounter))
}

// UniqueID returns id the first time it is asked for in a frame and an
// ID derived from it for every repeat. Containers sharing a label in one
// scope get distinct IDs that stay stable while their call order does.
func (ctx *Context) UniqueID(id ID) ID {
	if ctx.seenIDs == nil {
		ctx.seenIDs = make(map[ID]int)
	}
	n := ctx.seenIDs[id]
	ctx.seenIDs[id] = n + 1
	if n == 0 {
		return id
	}
	return id.WithInt(n)
}

// PushID pushes a scope derived from label onto the stack.
// Unlike GetID the pushed scope does not depend on call order.
func (ctx *Context) PushID(label string) {
	ctx.PushIDValue(ctx.CurrentID().With(label))
}

// PushIDValue pushes an already derived ID as the current scope.
func (ctx *Context) PushIDValue(id ID) {
	ctx.idStack = append(ctx.idStack, id)
	ctx.counterStack = append(ctx.counterStack, ctx.idCounter)
	ctx.idCounter = 0
}

// PopID removes the last ID from the stack.
func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
		ctx.idCounter = ctx.counterStack[n-1]
		ctx.counterStack = ctx.counterStack[:n-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}
