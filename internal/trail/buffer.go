// Package trail holds the fixed-capacity ring of recent trajectory points.
package trail

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Buffer is a fixed-capacity ring of trajectory slots. Slots that were never
// written are invalid. The slot after the last index wraps to index 0.
type Buffer struct {
	slots []dynamo.Slot
	head  int
	valid int
}

// New allocates capacity slots, all invalid except slot 0 which holds seed.
func New(capacity int, seed dynamo.State3) (*Buffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("trail capacity %d: %w", capacity, dynamo.ErrInvalidCapacity)
	}
	b := &Buffer{slots: make([]dynamo.Slot, capacity)}
	b.Reset(seed)
	return b, nil
}

// Reset invalidates every slot and writes seed into slot 0.
func (b *Buffer) Reset(seed dynamo.State3) {
	for i := range b.slots {
		b.slots[i] = dynamo.Slot{}
	}
	b.slots[0] = dynamo.Set(seed)
	b.head = 0
	b.valid = 1
}

// Push writes s into the slot after the head and makes it the new head.
// Once the ring is full the oldest point is overwritten.
func (b *Buffer) Push(s dynamo.State3) {
	b.head = (b.head + 1) % len(b.slots)
	if !b.slots[b.head].Valid {
		b.valid++
	}
	b.slots[b.head] = dynamo.Set(s)
}

// Fill replaces the contents with states laid out from index 0. Slots past
// len(states) become invalid and the head is the last written slot. Extra
// states beyond the capacity are ignored.
func (b *Buffer) Fill(states []dynamo.State3) {
	if len(states) == 0 {
		return
	}
	if len(states) > len(b.slots) {
		states = states[:len(b.slots)]
	}
	for i := range b.slots {
		if i < len(states) {
			b.slots[i] = dynamo.Set(states[i])
		} else {
			b.slots[i] = dynamo.Slot{}
		}
	}
	b.head = len(states) - 1
	b.valid = len(states)
}

// Snapshot copies the slots in index order, not temporal order.
func (b *Buffer) Snapshot() []dynamo.Slot {
	out := make([]dynamo.Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

func (b *Buffer) At(i int) dynamo.Slot  { return b.slots[i] }
func (b *Buffer) Head() int             { return b.head }
func (b *Buffer) Cap() int              { return len(b.slots) }
func (b *Buffer) Len() int              { return b.valid }
func (b *Buffer) Full() bool            { return b.valid == len(b.slots) }
func (b *Buffer) Latest() dynamo.State3 { return b.slots[b.head].State }
