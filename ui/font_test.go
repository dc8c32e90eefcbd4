package ui

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// Every glyph's uv rect and the reserved white rect's uv must lie inside
// the atlas (data model invariant, section 3).
func TestFontAtlasBuildGlyphsInsideBounds(t *testing.T) {
	atlas := NewFontAtlas()
	cfg := FontConfig{Name: "body", TTF: goregular.TTF, SizePx: 16}
	if err := atlas.Build([]FontConfig{cfg}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if atlas.Width <= 0 || atlas.Height <= 0 {
		t.Fatalf("expected positive atlas dimensions, got %dx%d", atlas.Width, atlas.Height)
	}

	glyphs := atlas.Glyphs("body")
	if len(glyphs) == 0 {
		t.Fatal("expected at least one baked glyph for ASCII range")
	}
	for r, g := range glyphs {
		if g.U0 < 0 || g.U0 > 1 || g.U1 < 0 || g.U1 > 1 || g.V0 < 0 || g.V0 > 1 || g.V1 < 0 || g.V1 > 1 {
			t.Fatalf("glyph %q uv rect out of [0,1]: %+v", r, g)
		}
	}

	u, v := atlas.WhiteUV[0], atlas.WhiteUV[1]
	if u <= 0 || u >= 1 || v <= 0 || v >= 1 {
		t.Fatalf("white rect uv center out of bounds: (%f, %f)", u, v)
	}
}

// The grayscale-then-RGBA pipeline duplicates the gray channel into RGB and
// uses it as alpha, per the font atlas build description.
func TestFontAtlasRGBAMatchesAlpha8(t *testing.T) {
	atlas := NewFontAtlas()
	if err := atlas.Build([]FontConfig{{Name: "body", TTF: goregular.TTF, SizePx: 16}}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(atlas.PixelsRGBA32) != len(atlas.PixelsAlpha8)*4 {
		t.Fatalf("RGBA32 buffer length %d, want %d", len(atlas.PixelsRGBA32), len(atlas.PixelsAlpha8)*4)
	}
	for i, g := range atlas.PixelsAlpha8 {
		r, gr, b, a := atlas.PixelsRGBA32[i*4], atlas.PixelsRGBA32[i*4+1], atlas.PixelsRGBA32[i*4+2], atlas.PixelsRGBA32[i*4+3]
		if r != g || gr != g || b != g {
			t.Fatalf("pixel %d: expected RGB channels equal to source gray %d, got (%d,%d,%d)", i, g, r, gr, b)
		}
		if a != g {
			t.Fatalf("pixel %d: alpha %d does not match source gray %d", i, a, g)
		}
	}
}

// A malformed TTF must not fail the whole atlas build; the font simply
// bakes no glyphs (ParseError recovery policy, section 7).
func TestFontAtlasBuildToleratesMalformedTTF(t *testing.T) {
	atlas := NewFontAtlas()
	good := FontConfig{Name: "body", TTF: goregular.TTF, SizePx: 16}
	bad := FontConfig{Name: "broken", TTF: []byte("not a font"), SizePx: 16}

	if err := atlas.Build([]FontConfig{good, bad}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(atlas.Glyphs("body")) == 0 {
		t.Fatal("expected the valid font to still bake glyphs")
	}
	if atlas.Glyphs("broken") != nil {
		t.Fatal("expected the malformed font to bake no glyphs, not panic or abort the build")
	}
}

// AtlasFont.MeasureText must account for newlines and unmapped glyphs
// (malformed/absent codepoints silently contribute zero width).
func TestAtlasFontMeasureTextMultiline(t *testing.T) {
	atlas := NewFontAtlas()
	if err := atlas.Build([]FontConfig{{Name: "body", TTF: goregular.TTF, SizePx: 16}}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	font := NewAtlasFont(atlas, "body", 1)

	single := font.MeasureText("hello", 1)
	multi := font.MeasureText("hello\nworld!", 1)

	if single.X <= 0 {
		t.Fatalf("expected positive width for single line, got %f", single.X)
	}
	if multi.Y <= single.Y {
		t.Fatalf("expected two-line text to measure taller than one line: %f vs %f", multi.Y, single.Y)
	}
}

func TestAtlasFontHasGlyphForBakedAndMissingRunes(t *testing.T) {
	atlas := NewFontAtlas()
	if err := atlas.Build([]FontConfig{{Name: "body", TTF: goregular.TTF, SizePx: 16, Ranges: []rune{'A', 'B'}}}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	font := NewAtlasFont(atlas, "body", 1)
	if !font.HasGlyph('A') {
		t.Fatal("expected baked rune 'A' to be present")
	}
	if font.HasGlyph('Z') {
		t.Fatal("expected un-baked rune 'Z' to be absent")
	}
}

func TestFontAtlasProviderSwitchesActiveFont(t *testing.T) {
	atlas := NewFontAtlas()
	if err := atlas.Build([]FontConfig{{Name: "a", TTF: goregular.TTF, SizePx: 16}, {Name: "b", TTF: goregular.TTF, SizePx: 24}}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	p := NewAtlasFontProvider(atlas, 1, "a", "b")
	if p.ActiveFont() == nil {
		t.Fatal("expected a default active font")
	}
	if err := p.SetActiveFont("b"); err != nil {
		t.Fatalf("SetActiveFont: %v", err)
	}
	if err := p.SetActiveFont("missing"); err == nil {
		t.Fatal("expected error selecting an unregistered font name")
	}
}
