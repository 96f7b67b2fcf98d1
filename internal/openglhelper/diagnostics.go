package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// maxErrorsPerCheck bounds the glGetError drain; a lost context can report
// errors forever.
const maxErrorsPerCheck = 16

var glErrorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "GL_INVALID_ENUM: enumeration parameter is not a legal enumeration",
	gl.INVALID_VALUE:                 "GL_INVALID_VALUE: value parameter is not a legal value for that function",
	gl.INVALID_OPERATION:             "GL_INVALID_OPERATION: illegal state for that command",
	gl.STACK_OVERFLOW:                "GL_STACK_OVERFLOW",
	gl.STACK_UNDERFLOW:               "GL_STACK_UNDERFLOW",
	gl.OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	gl.INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
	gl.CONTEXT_LOST:                  "GL_CONTEXT_LOST",
}

// ErrorName returns a readable description of an OpenGL error code.
func ErrorName(code uint32) string {
	if name, ok := glErrorNames[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown error 0x%x", code)
}

// CheckErrors drains the OpenGL error queue, logging each error with the
// checkpoint label. It returns the number of errors found and never aborts.
func CheckErrors(logger *slog.Logger, checkpoint string) int {
	count := 0
	for count < maxErrorsPerCheck {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		count++
		logger.Warn("OpenGL error", "checkpoint", checkpoint, "code", code, "error", ErrorName(code))
	}
	return count
}
