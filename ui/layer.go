package ui

// Layer is a write-only geometry channel belonging to one DrawList. All
// layers append vertices into the owning list's shared vertex buffer, but
// each keeps its own command and index buffers, so that layers can be
// reordered (or dropped) independently when the list is flattened for
// rendering — the "background" layer of a window draws before its
// widgets' layer, which draws before its children's layers, regardless of
// the order the window happened to touch them in during the frame.
type Layer struct {
	id int

	owner *DrawList

	Commands []DrawCmd
	Indices  []uint16

	clipRect  [4]float32
	textureID uint32
	sdf       bool
	openCmd   int // index into Commands of the mergeable tail, -1 if none
}

func newLayer(id int, owner *DrawList) *Layer {
	return &Layer{
		id:      id,
		owner:   owner,
		openCmd: -1,
	}
}

func (l *Layer) reset() {
	l.Commands = l.Commands[:0]
	l.Indices = l.Indices[:0]
	l.clipRect = [4]float32{}
	l.textureID = 0
	l.sdf = false
	l.openCmd = -1
}

// ensureCommand returns the index of a command matching the layer's
// current (texture, clip, sdf) state, opening a new one if the tail
// doesn't match — this is the command-merging rule from the data model.
func (l *Layer) ensureCommand() int {
	if l.openCmd >= 0 {
		c := &l.Commands[l.openCmd]
		if c.TextureID == l.textureID && c.ClipRect == l.clipRect && c.SDF == l.sdf {
			return l.openCmd
		}
	}
	l.Commands = append(l.Commands, DrawCmd{
		ClipRect:     l.clipRect,
		TextureID:    l.textureID,
		SDF:          l.sdf,
		VertexOffset: uint32(len(l.owner.VtxBuffer)),
		IndexOffset:  uint32(len(l.Indices)),
	})
	l.openCmd = len(l.Commands) - 1
	return l.openCmd
}

// SetTexture changes the texture used by subsequent primitives on this
// layer.
func (l *Layer) SetTexture(id uint32) {
	if l.textureID != id {
		l.textureID = id
		l.openCmd = -1
	}
}

// SetSDF marks subsequent primitives as distance-field glyphs (or clears
// the mark); like a texture or clip change, flipping it opens a new
// command.
func (l *Layer) SetSDF(on bool) {
	if l.sdf != on {
		l.sdf = on
		l.openCmd = -1
	}
}

// SetClipRect changes the clip rectangle used by subsequent primitives.
func (l *Layer) SetClipRect(x1, y1, x2, y2 float32) {
	next := [4]float32{x1, y1, x2, y2}
	if l.clipRect != next {
		l.clipRect = next
		l.openCmd = -1
	}
}

// AddQuad appends a textured/untextured quad (as two triangles) to the
// layer, merging into the current command if eligible.
func (l *Layer) AddQuad(v0, v1, v2, v3 Vertex) {
	ci := l.ensureCommand()
	base := uint16(len(l.owner.VtxBuffer)) - uint16(l.Commands[ci].VertexOffset)
	l.owner.VtxBuffer = append(l.owner.VtxBuffer, v0, v1, v2, v3)
	l.Indices = append(l.Indices, base, base+1, base+2, base, base+2, base+3)
	l.Commands[ci].ElemCount += 6
}

// AddTriangle appends a single filled triangle to the layer.
func (l *Layer) AddTriangle(v0, v1, v2 Vertex) {
	ci := l.ensureCommand()
	base := uint16(len(l.owner.VtxBuffer)) - uint16(l.Commands[ci].VertexOffset)
	l.owner.VtxBuffer = append(l.owner.VtxBuffer, v0, v1, v2)
	l.Indices = append(l.Indices, base, base+1, base+2)
	l.Commands[ci].ElemCount += 3
}

// finalize trims any command left with zero elements. SetTexture,
// SetClipRect and SetSDF open no command themselves (ensureCommand does,
// on the next primitive), so a state change after the last draw leaves
// nothing to trim.
func (l *Layer) finalize() {
	filtered := l.Commands[:0]
	for _, c := range l.Commands {
		if c.ElemCount > 0 {
			filtered = append(filtered, c)
		}
	}
	l.Commands = filtered
}

// layerPool and submission queue, owned by DrawList.

// AcquireLayer returns a Layer for this frame, reusing one from the free
// pool when available instead of allocating.
func (dl *DrawList) AcquireLayer() *Layer {
	var l *Layer
	if n := len(dl.freeLayers); n > 0 {
		l = dl.freeLayers[n-1]
		dl.freeLayers = dl.freeLayers[:n-1]
		l.reset()
	} else {
		dl.layerSeq++
		l = newLayer(dl.layerSeq, dl)
		dl.allLayers = append(dl.allLayers, l)
	}
	return l
}

// SubmitLayer appends l to the ordered submission queue; layers are
// flattened for rendering in submission order, so later submissions draw
// on top.
func (dl *DrawList) SubmitLayer(l *Layer) {
	l.finalize()
	dl.submitted = append(dl.submitted, l)
}

// SubmittedLayers returns the layers submitted this frame, in submission
// order.
func (dl *DrawList) SubmittedLayers() []*Layer {
	return dl.submitted
}

// resetLayers clears the submission queue and returns every submitted
// layer to the free pool, called from DrawList.Clear at the start of a
// new frame.
func (dl *DrawList) resetLayers() {
	dl.freeLayers = append(dl.freeLayers, dl.submitted...)
	dl.submitted = dl.submitted[:0]
}

// FlattenLayers appends every submitted layer's commands and indices into
// the list's legacy CmdBuffer/IdxBuffer, in submission order, adjusting
// each command's IndexOffset for its new position. This lets callers that
// render via explicit Layers (the window manager's background/foreground
// layers) share the same renderer path as the list's own implicit
// single-buffer drawing. Call once per frame, after all layers have been
// submitted and before the backend reads CmdBuffer/IdxBuffer.
func (dl *DrawList) FlattenLayers() {
	for _, l := range dl.submitted {
		base := uint32(len(dl.IdxBuffer))
		dl.IdxBuffer = append(dl.IdxBuffer, l.Indices...)
		for _, c := range l.Commands {
			c.IndexOffset += base
			dl.CmdBuffer = append(dl.CmdBuffer, c)
		}
	}
}
