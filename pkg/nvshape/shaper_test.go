package nvshape

import (
	"testing"

	"github.com/neoview/neoview/pkg/nvgrid"
)

func TestNewRequiresRegularFace(t *testing.T) {
	if _, err := New(Faces{}, 14); err == nil {
		t.Error("expected an error without a regular face")
	}
}

func TestParseFaceRejectsGarbage(t *testing.T) {
	if _, err := ParseFace([]byte("definitely not a font")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestFaceForFallsBackToRegular(t *testing.T) {
	// No variant faces installed: every attribute combination must
	// resolve to the regular face.
	s := &Shaper{faces: Faces{}}
	for _, attrs := range []nvgrid.Attrs{
		{},
		{Bold: true},
		{Italic: true},
		{Bold: true, Italic: true},
	} {
		if got := s.faceFor(attrs); got != s.faces.Regular {
			t.Errorf("attrs %+v selected a non-regular face", attrs)
		}
	}
}
