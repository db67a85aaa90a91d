// Command polygon draws one primitive of each topology: a point, a line,
// a triangle and a quad.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"github.com/paperboard/glprimitives/internal/config"
	"github.com/paperboard/glprimitives/internal/glutil"
	"github.com/paperboard/glprimitives/internal/shapes"
	"github.com/paperboard/glprimitives/internal/window"
)

const pointSize = 8 // pixels, a 1px point is hard to spot

var vertexShader = `
#version 330 core

layout (location = 0) in vec3 aPos;

void main() {
	gl_Position = vec4(aPos, 1.0);
}
`

var fragmentShader = `
#version 330 core

out vec4 FragColor;

void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

type scene struct {
	program uint32
	// one buffer, re-filled for every primitive
	buffer  *glutil.VertexArray
	prims   []shapes.Shape
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg, err := config.Load("Basic Primitives and Polygons")
	if err != nil {
		log.Fatalln(err)
	}

	win, err := window.Open(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	defer win.Close()
	fmt.Println("OpenGL version", window.Version())

	s, err := setup()
	if err != nil {
		log.Fatalln(err)
	}
	defer s.delete()

	// run gameloop
	for !win.ShouldClose() {

		win.ProcessInput()

		// draw into buffer
		draw(s)

		win.Frame()

	}

}

func setup() (*scene, error) {

	program, err := glutil.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	gl.PointSize(pointSize)

	return &scene{
		program: program,
		buffer:  glutil.NewVertexArray(nil, shapes.PositionSize, glutil.Position),
		prims:   shapes.Primitives(),
	}, nil

}

func draw(s *scene) {

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)

	for _, shape := range s.prims {
		s.buffer.DrawShape(shape)
	}

	// check for accumulated OpenGL errors
	if err := glutil.CheckError(); err != nil {
		log.Println(err)
	}

}

func (s *scene) delete() {
	s.buffer.Delete()
	gl.DeleteProgram(s.program)
}
