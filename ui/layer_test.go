package ui

import "testing"

// Command merging: consecutive primitives with the same (texture, clip,
// sdf) must land in one command; a texture or clip change opens a new one
// (section 4.A "Command merging").
func TestLayerMergesCommandsOnMatchingState(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l := dl.AcquireLayer()
	v := Vertex{}
	l.AddQuad(v, v, v, v)
	l.AddQuad(v, v, v, v)

	if len(l.Commands) != 1 {
		t.Fatalf("expected two same-state quads to merge into one command, got %d", len(l.Commands))
	}
	if l.Commands[0].ElemCount != 12 {
		t.Fatalf("expected 12 indices (2 quads x 6), got %d", l.Commands[0].ElemCount)
	}
}

func TestLayerOpensNewCommandOnTextureChange(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l := dl.AcquireLayer()
	v := Vertex{}
	l.AddQuad(v, v, v, v)
	l.SetTexture(7)
	l.AddQuad(v, v, v, v)

	if len(l.Commands) != 2 {
		t.Fatalf("expected texture change to split commands, got %d", len(l.Commands))
	}
	if l.Commands[1].TextureID != 7 {
		t.Fatalf("expected second command texture 7, got %d", l.Commands[1].TextureID)
	}
}

func TestLayerOpensNewCommandOnClipRectChange(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l := dl.AcquireLayer()
	v := Vertex{}
	l.AddQuad(v, v, v, v)
	l.SetClipRect(0, 0, 10, 10)
	l.AddQuad(v, v, v, v)

	if len(l.Commands) != 2 {
		t.Fatalf("expected clip rect change to split commands, got %d", len(l.Commands))
	}
	want := [4]float32{0, 0, 10, 10}
	if l.Commands[1].ClipRect != want {
		t.Fatalf("expected second command clip rect %+v, got %+v", want, l.Commands[1].ClipRect)
	}
}

// A SetTexture call with nothing drawn after it must not leave an empty
// command in the submitted layer (submitted via SubmitLayer).
func TestLayerFinalizeTrimsEmptyCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l := dl.AcquireLayer()
	v := Vertex{}
	l.AddQuad(v, v, v, v)
	l.SetTexture(3) // state change only; nothing is drawn after it
	dl.SubmitLayer(l)

	if len(l.Commands) != 1 {
		t.Fatalf("expected the dangling empty command to be trimmed, got %d commands", len(l.Commands))
	}
}

// Indices written by a layer must reference vertices already present in
// the owning list's vertex buffer (the DrawList invariant in section 3).
func TestLayerIndicesReferenceOwnerVertexBuffer(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l := dl.AcquireLayer()
	v0 := Vertex{Pos: [2]float32{0, 0}}
	v1 := Vertex{Pos: [2]float32{1, 0}}
	v2 := Vertex{Pos: [2]float32{1, 1}}
	v3 := Vertex{Pos: [2]float32{0, 1}}
	l.AddQuad(v0, v1, v2, v3)
	dl.SubmitLayer(l)
	dl.FlattenLayers()

	for _, idx := range dl.IdxBuffer {
		cmdVtxOffset := dl.CmdBuffer[0].VertexOffset
		if int(cmdVtxOffset)+int(idx) >= len(dl.VtxBuffer) {
			t.Fatalf("index %d (cmd vertex offset %d) references beyond vertex buffer of length %d", idx, cmdVtxOffset, len(dl.VtxBuffer))
		}
	}
}

// Layers are reused from the free pool on Clear/new_frame, not reallocated
// (section 3, Draw Layer lifecycle).
func TestAcquireLayerReusesFromFreePool(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	l1 := dl.AcquireLayer()
	dl.SubmitLayer(l1)
	dl.Clear() // new_frame: submitted layers return to the free pool

	l2 := dl.AcquireLayer()
	if l1 != l2 {
		t.Fatal("expected the freed layer to be reused rather than a new allocation")
	}
	if len(l2.Commands) != 0 {
		t.Fatalf("expected reused layer to be reset, got %d leftover commands", len(l2.Commands))
	}
}

// Layers submit in application order; FlattenLayers must preserve that
// order so later submissions draw on top (front-to-back via submission
// order, E6's focus-reorder guarantee rests on this).
func TestFlattenLayersPreservesSubmissionOrder(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	v := Vertex{}
	back := dl.AcquireLayer()
	back.SetTexture(1)
	back.AddQuad(v, v, v, v)

	front := dl.AcquireLayer()
	front.SetTexture(2)
	front.AddQuad(v, v, v, v)

	dl.SubmitLayer(back)
	dl.SubmitLayer(front)
	dl.FlattenLayers()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("expected 2 flattened commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 1 || dl.CmdBuffer[1].TextureID != 2 {
		t.Fatalf("expected submission order [1,2], got [%d,%d]", dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID)
	}
}
