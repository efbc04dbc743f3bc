package graphics

import "unsafe"

// Vertex is one corner of the triangle: a 2D position and an RGB colour.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

const (
	// VertexStride is the byte distance between consecutive vertices.
	VertexStride = int32(unsafe.Sizeof(Vertex{}))
	// ColorOffset is where the colour starts inside a vertex.
	ColorOffset = int(unsafe.Offsetof(Vertex{}.R))
)

// Triangle is uploaded once at startup and never changed afterwards.
var Triangle = [3]Vertex{
	{X: -0.6, Y: -0.4, R: 1, G: 0, B: 0},
	{X: 0.6, Y: -0.4, R: 0, G: 1, B: 0},
	{X: 0, Y: 0.6, R: 0, G: 0, B: 1},
}

// Shader attribute and uniform names. They must match the sources below.
const (
	uniformBasePosition = "uBasePosition"
	attribPosition      = "vPos"
	attribColor         = "vCol"
)

// GLSL 1.10 so the program links on a plain 2.0 context.
const (
	vertexShaderSource = `#version 110
uniform vec2 uBasePosition;
attribute vec3 vCol;
attribute vec2 vPos;
varying vec3 color;
void main()
{
    gl_Position = vec4(vPos + uBasePosition, 0.0, 1.0);
    color = vCol;
}
` + "\x00"

	fragmentShaderSource = `#version 110
varying vec3 color;
void main()
{
    gl_FragColor = vec4(color, 1.0);
}
` + "\x00"
)
