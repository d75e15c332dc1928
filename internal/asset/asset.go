// Package asset provides the sprite images and font used by the window
// platform. The default set is embedded in the binary; a directory with the
// same file names can replace it.
package asset

import (
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

//go:embed sprites/*.png
var sprites embed.FS

// Set holds one decoded image per sprite.
type Set struct {
	images map[core.Sprite]image.Image
}

// FileName returns the file a sprite is loaded from.
func FileName(s core.Sprite) string {
	return s.String() + ".png"
}

// Default decodes the embedded sprite set.
func Default() (*Set, error) {
	sub, err := fs.Sub(sprites, "sprites")
	if err != nil {
		return nil, fmt.Errorf("asset: embedded sprites: %w", err)
	}
	return load(sub)
}

// Load decodes a sprite set from dir. Every sprite must be present.
func Load(dir string) (*Set, error) {
	return load(os.DirFS(dir))
}

func load(fsys fs.FS) (*Set, error) {
	set := &Set{images: make(map[core.Sprite]image.Image, len(core.Sprites))}
	for _, s := range core.Sprites {
		name := FileName(s)
		img, err := decode(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("asset: %s: %w", name, err)
		}
		set.images[s] = img
	}
	return set, nil
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Image returns the image for s, or nil for text items.
func (s *Set) Image(sp core.Sprite) image.Image {
	return s.images[sp]
}

// Size returns the pixel size of the image for s.
func (s *Set) Size(sp core.Sprite) core.Size {
	img := s.images[sp]
	if img == nil {
		return core.Size{}
	}
	b := img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Font returns the face used for all HUD and menu text.
func Font() font.Face {
	return basicfont.Face7x13
}
