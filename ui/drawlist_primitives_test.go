package ui

import "testing"

func TestAddCircleFilledEmitsTriangleFan(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddCircleFilled(50, 50, 10, RGBA(255, 0, 0, 255), 8)

	// A fan over 8 segments: 1 center + 9 rim vertices, 8 triangles.
	if got := len(dl.VtxBuffer); got != 10 {
		t.Fatalf("vertex count = %d, want 10", got)
	}
	if got := len(dl.IdxBuffer); got != 8*3 {
		t.Fatalf("index count = %d, want 24", got)
	}
}

func TestAddCircleFilledSkipsTransparentAndDegenerate(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddCircleFilled(0, 0, 10, RGBA(255, 255, 255, 0), 8)
	dl.AddCircleFilled(0, 0, 0, RGBA(255, 255, 255, 255), 8)
	if len(dl.VtxBuffer) != 0 {
		t.Fatalf("expected no geometry, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestAddLinesConnectsPoints(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	pts := []Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	dl.AddLines(pts, RGBA(0, 255, 0, 255), 1)

	// Three segments, each a 4-vertex quad.
	if got := len(dl.VtxBuffer); got != 12 {
		t.Fatalf("vertex count = %d, want 12", got)
	}
}

// Flipping the SDF flag must open a new command on both the list's
// implicit buffer and explicit layers, exactly like a texture change.
func TestSDFFlagSplitsCommands(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.SetTexture(7)
	dl.AddRect(0, 0, 10, 10, RGBA(255, 255, 255, 255))
	dl.SetSDF(true)
	dl.AddRect(20, 0, 10, 10, RGBA(255, 255, 255, 255))
	dl.SetSDF(false)
	dl.SetTexture(0)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("command count = %d, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].SDF || !dl.CmdBuffer[1].SDF {
		t.Fatalf("sdf flags = %v,%v, want false,true", dl.CmdBuffer[0].SDF, dl.CmdBuffer[1].SDF)
	}

	l := dl.AcquireLayer()
	l.SetTexture(7)
	l.AddTriangle(Vertex{}, Vertex{}, Vertex{})
	l.SetSDF(true)
	l.AddTriangle(Vertex{}, Vertex{}, Vertex{})
	if len(l.Commands) != 2 {
		t.Fatalf("layer command count = %d, want 2", len(l.Commands))
	}
	if l.Commands[0].SDF || !l.Commands[1].SDF {
		t.Fatal("layer sdf flags did not split the command")
	}
}

func TestAddImageExRestoresTextureState(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, RGBA(255, 255, 255, 255))
	dl.AddImageEx(42, 20, 20, 32, 32, 0, 0, 1, 1, RGBA(255, 255, 255, 255))
	dl.AddRect(60, 0, 10, 10, RGBA(255, 255, 255, 255))
	dl.Finalize()

	// Untextured, textured, untextured: three commands, the middle one
	// carrying the image texture.
	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("command count = %d, want 3", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].TextureID != 0 || dl.CmdBuffer[1].TextureID != 42 || dl.CmdBuffer[2].TextureID != 0 {
		t.Fatalf("texture ids = %d,%d,%d, want 0,42,0",
			dl.CmdBuffer[0].TextureID, dl.CmdBuffer[1].TextureID, dl.CmdBuffer[2].TextureID)
	}

	uv := dl.VtxBuffer[dl.CmdBuffer[1].VertexOffset+2].TexCoord
	if uv != [2]float32{1, 1} {
		t.Fatalf("image bottom-right uv = %v, want (1,1)", uv)
	}
}
