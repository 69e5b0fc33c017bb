package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io/fs"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

// IconOversample is the raster resolution per scene unit. Icons are drawn
// at SymbolWidth x SymbolHeight scene units and scaled by the view, so they
// are rasterised larger than their footprint to stay sharp when zoomed in.
const IconOversample = 4

// IconPath returns the conventional asset path for a kind's icon.
func IconPath(kind scene.Kind) string {
	return "/icons/" + kind.String() + ".svg"
}

// IconSet loads and caches rasterised symbol icons from a file system.
type IconSet struct {
	fsys fs.FS

	mu     sync.Mutex
	images map[scene.Kind]image.Image
	errs   map[scene.Kind]error
}

// NewIconSet reads icons from fsys, which must contain icons/<kind>.svg.
func NewIconSet(fsys fs.FS) *IconSet {
	return &IconSet{
		fsys:   fsys,
		images: make(map[scene.Kind]image.Image),
		errs:   make(map[scene.Kind]error),
	}
}

// Image returns the rasterised icon for kind. Load failures are cached and
// reported once through the error; callers fall back to a placeholder.
func (s *IconSet) Image(kind scene.Kind) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.images[kind]; ok {
		return img, nil
	}
	if err, ok := s.errs[kind]; ok {
		return nil, err
	}

	img, err := s.load(kind)
	if err != nil {
		s.errs[kind] = err
		return nil, err
	}
	s.images[kind] = img
	return img, nil
}

func (s *IconSet) load(kind scene.Kind) (image.Image, error) {
	if s.fsys == nil {
		return nil, fmt.Errorf("render: no icon source for %s", kind)
	}
	path := strings.TrimPrefix(IconPath(kind), "/")
	f, err := s.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: open icon %s: %w", path, err)
	}
	defer f.Close()

	icon, err := oksvg.ReadIconStream(f)
	if err != nil {
		return nil, fmt.Errorf("render: parse icon %s: %w", path, err)
	}

	w := int(scene.SymbolWidth * IconOversample)
	h := int(scene.SymbolHeight * IconOversample)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	icon.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

// PlaceholderImage returns a solid rectangle the size of an icon.
func PlaceholderImage(c color.NRGBA) image.Image {
	w := int(scene.SymbolWidth * IconOversample)
	h := int(scene.SymbolHeight * IconOversample)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}
