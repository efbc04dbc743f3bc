package graphics

import (
	"strings"
	"testing"
	"time"
)

func TestVertexLayout(t *testing.T) {
	if VertexStride != 5*4 {
		t.Fatalf("VertexStride = %d, want 20", VertexStride)
	}
	if ColorOffset != 2*4 {
		t.Fatalf("ColorOffset = %d, want 8", ColorOffset)
	}
}

func TestTriangleColours(t *testing.T) {
	want := [3][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, v := range Triangle {
		if got := [3]float32{v.R, v.G, v.B}; got != want[i] {
			t.Errorf("vertex %d colour = %v, want %v", i, got, want[i])
		}
	}
	if Triangle[2].X != 0 || Triangle[2].Y != 0.6 {
		t.Errorf("apex = (%v, %v), want (0, 0.6)", Triangle[2].X, Triangle[2].Y)
	}
}

func TestShaderSources(t *testing.T) {
	for name, src := range map[string]string{"vertex": vertexShaderSource, "fragment": fragmentShaderSource} {
		if !strings.HasSuffix(src, "\x00") {
			t.Errorf("%s shader is not NUL terminated", name)
		}
		if !strings.HasPrefix(src, "#version 110\n") {
			t.Errorf("%s shader does not target GLSL 1.10", name)
		}
	}
	for _, ident := range []string{uniformBasePosition, attribPosition, attribColor} {
		if !strings.Contains(vertexShaderSource, ident) {
			t.Errorf("vertex shader does not declare %s", ident)
		}
	}
}

func TestNewClock(t *testing.T) {
	if _, err := NewClock(ClockGLFW); err != nil {
		t.Fatal(err)
	}
	c, err := NewClock(ClockHRTime)
	if err != nil {
		t.Fatal(err)
	}
	a := c.Now()
	time.Sleep(time.Millisecond)
	if b := c.Now(); b <= a {
		t.Fatalf("hrtime clock did not advance: %v then %v", a, b)
	}
	if _, err := NewClock("sundial"); err == nil {
		t.Fatal("expected error for unknown clock")
	}
}
