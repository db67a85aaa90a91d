// Command callback draws a triangle and logs every cursor move reported by
// GLFW.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/glprimitives/internal/config"
	"github.com/paperboard/glprimitives/internal/glutil"
	"github.com/paperboard/glprimitives/internal/shapes"
	"github.com/paperboard/glprimitives/internal/window"
)

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
	program  uint32
	triangle *glutil.VertexArray

	// last cursor position, in screen coordinates
	mouseX, mouseY float64
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg, err := config.Load("GLFW Callback Example")
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

	win.SetCursorPosCallback(s.cursorMoved)

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

	return &scene{
		program:  program,
		triangle: glutil.NewVertexArray(shapes.Triangle.Positions, shapes.PositionSize, glutil.Position),
	}, nil

}

func (s *scene) cursorMoved(_ *glfw.Window, x, y float64) {
	s.mouseX, s.mouseY = x, y
	fmt.Printf("Mouse Position: (%v, %v)\n", s.mouseX, s.mouseY)
}

func draw(s *scene) {

	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(s.program)
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
