// Command lighting draws a cube lit by a single white point light, using
// ambient, diffuse and specular (Phong) terms.
package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/glprimitives/internal/config"
	"github.com/paperboard/glprimitives/internal/glutil"
	"github.com/paperboard/glprimitives/internal/projection"
	"github.com/paperboard/glprimitives/internal/shapes"
	"github.com/paperboard/glprimitives/internal/window"
)

var (
	eye         = mgl32.Vec3{0, 0, 3}
	lightPos    = mgl32.Vec3{1, 1, 1}
	lightColor  = mgl32.Vec3{1, 1, 1}
	objectColor = mgl32.Vec3{1, 0.5, 0.31}
)

var vertexShader = `
#version 330 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

out vec3 FragPos;
out vec3 Normal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	FragPos = vec3(model * vec4(aPos, 1.0));
	Normal = mat3(transpose(inverse(model))) * aNormal;
	gl_Position = projection * view * vec4(FragPos, 1.0);
}
`

var fragmentShader = `
#version 330 core

out vec4 FragColor;

in vec3 FragPos;
in vec3 Normal;

uniform vec3 lightPos;
uniform vec3 viewPos;
uniform vec3 lightColor;
uniform vec3 objectColor;

void main() {
	vec3 ambient = 0.1 * lightColor;

	vec3 norm = normalize(Normal);
	vec3 lightDir = normalize(lightPos - FragPos);
	vec3 diffuse = max(dot(norm, lightDir), 0.0) * lightColor;

	vec3 viewDir = normalize(viewPos - FragPos);
	vec3 reflectDir = reflect(-lightDir, norm);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), 32);
	vec3 specular = 0.5 * spec * lightColor;

	FragColor = vec4((ambient + diffuse + specular) * objectColor, 1.0);
}
`

type uniforms struct {
	model, view, projection int32
	lightPos, viewPos       int32
	lightColor, objectColor int32
}

type scene struct {
	program  uint32
	uniforms uniforms
	cube     *glutil.VertexArray
}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {

	cfg, err := config.Load("Basic Primitives with Lighting")
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
		draw(s, win.Aspect())

		win.Frame()

	}

}

func setup() (*scene, error) {

	program, err := glutil.NewProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	// do not render pixels hidden behind nearer faces
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	normal := glutil.Attrib{Location: 1, Size: 3, Offset: shapes.CubeNormalOffset}

	return &scene{
		program: program,
		uniforms: uniforms{
			model:       glutil.Uniform(program, "model"),
			view:        glutil.Uniform(program, "view"),
			projection:  glutil.Uniform(program, "projection"),
			lightPos:    glutil.Uniform(program, "lightPos"),
			viewPos:     glutil.Uniform(program, "viewPos"),
			lightColor:  glutil.Uniform(program, "lightColor"),
			objectColor: glutil.Uniform(program, "objectColor"),
		},
		cube: glutil.NewIndexedVertexArray(shapes.CubeVertices, shapes.CubeIndices, shapes.CubeVertexSize, glutil.Position, normal),
	}, nil

}

func draw(s *scene, aspect float32) {

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(s.program)

	// object -> world -> eye -> clip
	u := s.uniforms
	glutil.SetMat4(u.model, mgl32.Ident4())
	glutil.SetMat4(u.view, mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}))
	glutil.SetMat4(u.projection, projection.Select(projection.Perspective{}, aspect))

	glutil.SetVec3(u.lightPos, lightPos)
	glutil.SetVec3(u.viewPos, eye)
	glutil.SetVec3(u.lightColor, lightColor)
	glutil.SetVec3(u.objectColor, objectColor)

	s.cube.DrawIndexed(len(shapes.CubeIndices))

	// check for accumulated OpenGL errors
	if err := glutil.CheckError(); err != nil {
		log.Println(err)
	}

}

func (s *scene) delete() {
	s.cube.Delete()
	gl.DeleteProgram(s.program)
}
