// Package bigchar renders a single glyph (a palace branch) as half-block art.
package bigchar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// systemFonts are CJK fonts probed in order.
var systemFonts = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

const (
	faceSize  = 64
	threshold = 40 // gray level above which a half cell is lit
)

// ErrNoFont is returned when no font could be parsed.
var ErrNoFont = errors.New("bigchar: no usable font")

// ParseFace builds a face from font bytes. OpenType collections and single
// fonts are tried first; plain TrueType files fall back to freetype.
func ParseFace(data []byte) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: faceSize, DPI: 72}
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face, nil
			}
		}
	}
	if fnt, err := opentype.Parse(data); err == nil {
		if face, err := opentype.NewFace(fnt, opts); err == nil {
			return face, nil
		}
	}
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFont, err)
	}
	return truetype.NewFace(fnt, &truetype.Options{Size: faceSize, DPI: 72}), nil
}

// Renderer draws glyphs with one face and memoizes the results.
type Renderer struct {
	face font.Face

	mu    sync.Mutex
	cache map[string]string
}

// New creates a renderer over face. A nil face renders nothing.
func New(face font.Face) *Renderer {
	return &Renderer{face: face, cache: make(map[string]string)}
}

var (
	systemOnce     sync.Once
	systemRenderer *Renderer
)

// System returns a renderer over the first CJK font found on this machine.
func System() *Renderer {
	systemOnce.Do(func() {
		var face font.Face
		for _, path := range systemFonts {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if f, err := ParseFace(data); err == nil {
				face = f
				break
			}
		}
		systemRenderer = New(face)
	})
	return systemRenderer
}

// Available reports whether the renderer has a face.
func (r *Renderer) Available() bool {
	return r != nil && r.face != nil
}

// Render returns the first rune of char as cols x rows half-block art,
// or "" when no face is loaded.
func (r *Renderer) Render(char string, cols, rows int) string {
	if !r.Available() || char == "" || cols <= 0 || rows <= 0 {
		return ""
	}
	key := fmt.Sprintf("%s/%d/%d", char, cols, rows)

	r.mu.Lock()
	defer r.mu.Unlock()
	if out, ok := r.cache[key]; ok {
		return out
	}
	out := toHalfBlocks(r.rasterize([]rune(char)[0], cols, rows*2), rows)
	r.cache[key] = out
	return out
}

// rasterize draws ch centred on a square canvas and scales it to w x h.
func (r *Renderer) rasterize(ch rune, w, h int) *image.Gray {
	bounds, _, _ := r.face.GlyphBounds(ch)
	gw := (bounds.Max.X - bounds.Min.X).Ceil()
	gh := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const pad = 4
	side := max(gw, gh, faceSize) + 2*pad
	canvas := image.NewGray(image.Rect(0, 0, side, side))

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: r.face,
		Dot: fixed.P(
			(side-gw)/2-bounds.Min.X.Floor(),
			(side-gh)/2-bounds.Min.Y.Floor(),
		),
	}
	d.DrawString(string(ch))

	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), canvas, canvas.Bounds(), xdraw.Src, nil)
	return dst
}

var halfBlocks = [4]rune{' ', '▄', '▀', '█'} // indexed by top<<1 | bottom

func toHalfBlocks(img *image.Gray, rows int) string {
	w := img.Bounds().Dx()
	lines := make([]string, rows)
	for row := range lines {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			idx := 0
			if img.GrayAt(x, 2*row).Y > threshold {
				idx |= 2
			}
			if img.GrayAt(x, 2*row+1).Y > threshold {
				idx |= 1
			}
			sb.WriteRune(halfBlocks[idx])
		}
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}
