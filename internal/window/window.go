// Package window opens a GLFW window with a current OpenGL context.
package window

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paperboard/glprimitives/internal/config"
	"github.com/paperboard/glprimitives/internal/projection"
)

// Window is a GLFW window tracking its framebuffer size.
type Window struct {
	*glfw.Window

	width, height int
}

// Open initializes GLFW, creates the window described by cfg, makes its
// context current and loads the OpenGL functions. The caller must run on
// the main thread (see runtime.LockOSThread) and call Close when done.
func Open(cfg config.Config) (*Window, error) {

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	// use OpenGL v3.3, compatibility profile keeps GL_QUADS available
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)

	// create window handle
	gw, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create glfw window: %w", err)
	}
	gw.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	glfw.SwapInterval(cfg.SwapInterval)

	w := &Window{Window: gw}
	w.resize(gw.GetFramebufferSize())
	gw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resize(width, height)
	})

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	return w, nil

}

func (w *Window) resize(width, height int) {
	w.width, w.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the framebuffer width/height. A minimized window has
// height 0, the ratio is then 1.
func (w *Window) Aspect() float32 {
	return projection.SanitizeAspect(float32(w.width) / float32(w.height))
}

// Pressed reports whether key is held down. Digits and upper case letters
// are given as their rune, GLFW uses the ASCII code for them.
func (w *Window) Pressed(key rune) bool {
	return w.GetKey(glfw.Key(key)) == glfw.Press
}

// ProcessInput closes the window when Escape is held.
func (w *Window) ProcessInput() {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// Frame presents the back buffer and polls events.
func (w *Window) Frame() {

	// render buffer to screen
	w.SwapBuffers()

	// glfw events?
	glfw.PollEvents()

}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}
