// Package freelist implements a best-fit, coalescing free-space allocator
// over a fixed-size arena of offsets — the kind of bookkeeping a GPU
// buffer or texture-atlas sub-allocator needs when it hands out and takes
// back variable-sized regions of a single preallocated slab.
//
// Unlike a pointer-based doubly-linked free list, nodes live in a single
// preallocated slice and are referenced by index; a free-slot stack hands
// out slab positions in O(1), so Get and Return never allocate.
package freelist

import (
	"fmt"
	"log/slog"
)

var (
	freelistLogLevel = new(slog.LevelVar)
	logger           = slog.New(slog.NewTextHandler(noopOutput{}, &slog.HandlerOptions{Level: freelistLogLevel}))
)

// noopOutput discards log output until a host installs its own handler.
type noopOutput struct{}

func (noopOutput) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the package logger, e.g. to point it at the host's
// own slog.Handler instead of discarding output.
func SetLogger(l *slog.Logger) { logger = l }

// SetVerbose toggles debug-level logging of allocation traffic.
func SetVerbose(v bool) {
	if v {
		freelistLogLevel.Set(slog.LevelDebug)
	} else {
		freelistLogLevel.Set(slog.LevelInfo)
	}
}

const none = ^uint32(0)

type node struct {
	offset, size    uint64
	prevIdx, nextIdx uint32
}

// Node is a handle to an allocated region, returned by Get and consumed by
// Return. It carries no index into the freelist's internals; the
// freelist looks the region back up by offset on Return.
type Node struct {
	Offset uint64
	Size   uint64
}

// Freelist manages allocation over a single arena of totalSize bytes
// (or any other linear unit — offsets and sizes are unit-agnostic).
// minNodeSize bounds both the smallest splittable remainder and the
// maximum number of concurrently free nodes (totalSize / minNodeSize),
// which sizes the preallocated node arena.
type Freelist struct {
	totalSize   uint64
	minNodeSize uint64
	usedSpace   uint64

	nodes     []node
	freeSlots []uint32

	// headIdx is a sentinel free-list head; its nextIdx points at the
	// first real free node, mirroring the original's dummy head node.
	headIdx uint32
}

// New constructs a Freelist covering [0, totalSize) with a minimum
// splittable node size of minNodeSize. Panics if minNodeSize is zero or
// exceeds totalSize — both are programming errors, not resource
// exhaustion.
func New(totalSize, minNodeSize uint64) *Freelist {
	if minNodeSize == 0 || minNodeSize > totalSize {
		panic(fmt.Sprintf("freelist: invalid sizes (total=%d, min=%d)", totalSize, minNodeSize))
	}

	maxNodes := totalSize/minNodeSize + 1 // +1 for the sentinel head
	fl := &Freelist{
		totalSize:   totalSize,
		minNodeSize: minNodeSize,
		nodes:       make([]node, maxNodes),
		freeSlots:   make([]uint32, 0, maxNodes),
	}

	for i := uint32(0); i < uint32(maxNodes); i++ {
		fl.nodes[i] = node{prevIdx: none, nextIdx: none}
		fl.freeSlots = append(fl.freeSlots, i)
	}

	fl.headIdx = fl.popSlot()
	fl.nodes[fl.headIdx] = node{prevIdx: none, nextIdx: none}

	firstIdx := fl.popSlot()
	fl.nodes[firstIdx] = node{offset: 0, size: totalSize, prevIdx: fl.headIdx, nextIdx: none}
	fl.nodes[fl.headIdx].nextIdx = firstIdx

	return fl
}

func (fl *Freelist) popSlot() uint32 {
	n := len(fl.freeSlots)
	idx := fl.freeSlots[n-1]
	fl.freeSlots = fl.freeSlots[:n-1]
	return idx
}

func (fl *Freelist) pushSlot(idx uint32) {
	fl.nodes[idx] = node{prevIdx: none, nextIdx: none}
	fl.freeSlots = append(fl.freeSlots, idx)
}

func (fl *Freelist) unlink(idx uint32) {
	n := fl.nodes[idx]
	if n.nextIdx != none {
		fl.nodes[n.nextIdx].prevIdx = n.prevIdx
	}
	fl.nodes[n.prevIdx].nextIdx = n.nextIdx
}

// UsedSpace returns the total size currently handed out via Get and not
// yet returned.
func (fl *Freelist) UsedSpace() uint64 { return fl.usedSpace }

// TotalSize returns the arena size passed to New.
func (fl *Freelist) TotalSize() uint64 { return fl.totalSize }

// Get allocates size units from the best-fitting free region (the free
// block whose leftover after the allocation is smallest and
// non-negative). Returns ok=false if no free block is large enough —
// resource exhaustion, not a programming error, so the caller decides how
// to respond. When the leftover would be smaller than minNodeSize, the
// whole block is handed out and the returned Node's Size is the block's
// size rather than size.
func (fl *Freelist) Get(size uint64) (Node, bool) {
	var bestIdx uint32 = none
	bestDiff := ^uint64(0)

	cur := fl.nodes[fl.headIdx].nextIdx
	for cur != none {
		n := fl.nodes[cur]
		if n.size >= size && n.size-size < bestDiff {
			bestIdx = cur
			bestDiff = n.size - size
		}
		cur = n.nextIdx
	}

	if bestIdx == none {
		logger.Debug("allocation failed", "size", size, "used", fl.usedSpace, "total", fl.totalSize)
		return Node{}, false
	}

	block := fl.nodes[bestIdx]
	result := Node{Offset: block.offset, Size: size}

	if block.size-size >= fl.minNodeSize {
		newIdx := fl.popSlot()
		newNode := node{
			offset:  block.offset + size,
			size:    block.size - size,
			prevIdx: bestIdx,
			nextIdx: block.nextIdx,
		}
		if block.nextIdx != none {
			fl.nodes[block.nextIdx].prevIdx = newIdx
		}
		fl.nodes[newIdx] = newNode
		block.size = size
		block.nextIdx = newIdx
		fl.nodes[bestIdx] = block
	} else {
		// The leftover is too small to stand as a free node, so it goes
		// out with the allocation.
		result.Size = block.size
	}

	fl.usedSpace += result.Size
	fl.unlink(bestIdx)
	fl.pushSlot(bestIdx)

	return result, true
}

// Return releases a previously-Get-ed region back to the free list,
// inserting it in offset order and coalescing with either neighbor that
// turns out to be contiguous.
func (fl *Freelist) Return(n Node) {
	fl.usedSpace -= n.Size

	if fl.nodes[fl.headIdx].nextIdx == none {
		idx := fl.popSlot()
		fl.nodes[idx] = node{offset: n.Offset, size: n.Size, prevIdx: fl.headIdx, nextIdx: none}
		fl.nodes[fl.headIdx].nextIdx = idx
		return
	}

	idx := fl.popSlot()
	fl.nodes[idx] = node{offset: n.Offset, size: n.Size}

	// Find the first free node starting after n and splice idx before it,
	// else append at the tail.
	cur := fl.nodes[fl.headIdx].nextIdx
	for {
		if fl.nodes[cur].offset > n.Offset {
			prevIdx := fl.nodes[cur].prevIdx
			fl.nodes[idx].nextIdx = cur
			fl.nodes[idx].prevIdx = prevIdx
			fl.nodes[cur].prevIdx = idx
			fl.nodes[prevIdx].nextIdx = idx
			break
		}
		if fl.nodes[cur].nextIdx == none {
			fl.nodes[idx].prevIdx = cur
			fl.nodes[idx].nextIdx = none
			fl.nodes[cur].nextIdx = idx
			break
		}
		cur = fl.nodes[cur].nextIdx
	}

	// Coalesce with the left neighbor.
	prevIdx := fl.nodes[idx].prevIdx
	nextIdx := fl.nodes[idx].nextIdx
	if prevIdx != fl.headIdx {
		prevNode := fl.nodes[prevIdx]
		if prevNode.offset+prevNode.size == fl.nodes[idx].offset {
			fl.nodes[prevIdx].size += fl.nodes[idx].size
			if nextIdx != none {
				fl.nodes[nextIdx].prevIdx = prevIdx
			}
			fl.nodes[prevIdx].nextIdx = nextIdx
			fl.pushSlot(idx)
			idx = prevIdx
		}
	}

	// Coalesce with the right neighbor.
	nextIdx = fl.nodes[idx].nextIdx
	if nextIdx != none {
		nextNextIdx := fl.nodes[nextIdx].nextIdx
		if fl.nodes[idx].offset+fl.nodes[idx].size == fl.nodes[nextIdx].offset {
			fl.nodes[idx].size += fl.nodes[nextIdx].size
			if nextNextIdx != none {
				fl.nodes[nextNextIdx].prevIdx = idx
			}
			fl.nodes[idx].nextIdx = nextNextIdx
			fl.pushSlot(nextIdx)
		}
	}
}

// FreeRegions returns the current free list as a slice of (offset, size)
// pairs ordered by offset, for diagnostics and testing.
func (fl *Freelist) FreeRegions() []Node {
	var out []Node
	cur := fl.nodes[fl.headIdx].nextIdx
	for cur != none {
		n := fl.nodes[cur]
		out = append(out, Node{Offset: n.offset, Size: n.size})
		cur = n.nextIdx
	}
	return out
}
