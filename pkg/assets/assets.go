// Package assets bundles the viewer's shaders and textures and decodes
// images into the layout OpenGL expects.
package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"

	// Decoders registered with image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Paths of the bundled files inside FS.
const (
	CubeVertexShader   = "shaders/cube.vert"
	CubeFragmentShader = "shaders/cube.frag"
	CrateTexture       = "textures/crate.png"
)

//go:embed shaders textures
var files embed.FS

// FS returns the embedded asset filesystem.
func FS() fs.FS {
	return files
}

// ErrAssetNotFound is returned when a requested asset does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// DecodeError reports an asset whose contents could not be decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReadText reads a text asset such as shader source.
func ReadText(fsys fs.FS, path string) (string, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadShaderPair reads a vertex and fragment shader source.
func ReadShaderPair(fsys fs.FS, vertexPath, fragmentPath string) (vertex, fragment string, err error) {
	vertex, err = ReadText(fsys, vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read vertex shader: %w", err)
	}

	fragment, err = ReadText(fsys, fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return vertex, fragment, nil
}

// ReadImage decodes an image asset into RGBA rows ordered bottom to top,
// ready for glTexImage2D.
func ReadImage(fsys fs.FS, path string) (*image.RGBA, error) {
	data, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, &DecodeError{Path: path, Err: errors.New("image has no pixels")}
	}

	// GL's texture origin is the bottom-left corner
	return transform.FlipV(img), nil
}

func readFile(fsys fs.FS, path string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetNotFound, path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
