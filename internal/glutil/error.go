package glutil

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-compatibility/gl"
)

var errorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// maxErrors bounds the drain loop; a lost context may report errors forever.
const maxErrors = 16

// CheckError drains the accumulated OpenGL errors and returns them as one
// error, or nil.
func CheckError() error {
	var names []string
	for i := 0; i < maxErrors; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if name, ok := errorNames[code]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("GL_ERROR UNKNOWN: 0x%x", code))
		}
	}
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("GL_ERROR: %s", strings.Join(names, ", "))
}
