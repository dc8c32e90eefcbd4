package ui

import "testing"

func TestCursorForResizeEdge(t *testing.T) {
	cases := []struct {
		edge ResizableEdge
		want MouseCursor
	}{
		{ResizeEdgeNone, CursorArrow},
		{ResizeEdgeLeft, CursorResizeEW},
		{ResizeEdgeRight, CursorResizeEW},
		{ResizeEdgeTop, CursorResizeNS},
		{ResizeEdgeBottom, CursorResizeNS},
		{ResizeEdgeLeft | ResizeEdgeTop, CursorResizeNWSE},
		{ResizeEdgeRight | ResizeEdgeBottom, CursorResizeNWSE},
		{ResizeEdgeRight | ResizeEdgeTop, CursorResizeNESW},
		{ResizeEdgeLeft | ResizeEdgeBottom, CursorResizeNESW},
	}
	for _, c := range cases {
		if got := cursorForResizeEdge(c.edge); got != c.want {
			t.Errorf("cursorForResizeEdge(%v) = %v, want %v", c.edge, got, c.want)
		}
	}
}
