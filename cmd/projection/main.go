// Command projection draws a triangle through a projection matrix chosen
// from the keyboard: 1 orthographic, 2 perspective, 3 oblique.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"github.com/paperboard/glprimitives/internal/config"
	"github.com/paperboard/glprimitives/internal/glutil"
	"github.com/paperboard/glprimitives/internal/projection"
	"github.com/paperboard/glprimitives/internal/shapes"
	"github.com/paperboard/glprimitives/internal/window"
)

var vertexShader = `
#version 330 core

layout (location = 0) in vec3 aPos;

uniform mat4 projection;

void main() {
	gl_Position = projection * vec4(aPos, 1.0);
}
`

var fragmentShader = `
#version 330 core

out vec4 FragColor;

void main() {
	FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// scene is the state threaded through the render loop.
type scene struct {
	program       uint32
	projectionLoc int32
	triangle      *glutil.VertexArray
	selector      *projection.Selector
	last          projection.Kind
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg, err := config.Load("Projection Example")
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

		update(s, win)

		// draw into buffer
		draw(s, win.Aspect())

		win.Frame()

	}

}

func setup() (*scene, error) {

	program, err := glutil.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	s := &scene{
		program:       program,
		projectionLoc: glutil.Uniform(program, "projection"),
		triangle:      glutil.NewVertexArray(shapes.Triangle.Positions, shapes.PositionSize, glutil.Position),
		selector:      projection.NewSelector(),
	}
	s.last = s.selector.Current()
	log.Printf("projection: %s", s.last)

	return s, nil

}

func update(s *scene, win *window.Window) {

	win.ProcessInput()
	s.selector.Update(win.Pressed)

	if k := s.selector.Current(); k != s.last {
		log.Printf("projection: %s", k)
		s.last = k
	}

}

func draw(s *scene, aspect float32) {

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)
	glutil.SetMat4(s.projectionLoc, s.selector.Matrix(aspect))

	s.triangle.Draw(shapes.Triangle.Topology, 0, shapes.Triangle.Count())

	// check for accumulated OpenGL errors
	if err := glutil.CheckError(); err != nil {
		log.Println(err)
	}

}

func (s *scene) delete() {
	s.triangle.Delete()
	gl.DeleteProgram(s.program)
}
