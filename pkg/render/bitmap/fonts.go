package bitmap

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Candidate font files searched on the host, in preference order. The
// raster path needs a real scalable face; when none of these resolve, the
// fixed-size basicfont keeps rendering functional (at reduced fidelity).
var (
	regularCandidates = []string{"DejaVuSans.ttf", "Arial.ttf", "FreeSans.ttf"}
	boldCandidates    = []string{"DejaVuSans-Bold.ttf", "Arial Bold.ttf", "FreeSansBold.ttf"}
)

// fontCandidates builds the lookup lists for one render. A preferred family
// is searched ahead of the host defaults, both as a bare family name and as
// the conventional file names; an unresolvable preference degrades to the
// defaults.
func fontCandidates(preferred string) (regular, bold []string) {
	if preferred == "" {
		return regularCandidates, boldCandidates
	}
	regular = append([]string{preferred + ".ttf", preferred}, regularCandidates...)
	bold = append([]string{preferred + "-Bold.ttf", preferred + " Bold.ttf"}, boldCandidates...)
	return regular, bold
}

// faceKey identifies a cached face by size and weight.
type faceKey struct {
	size int
	bold bool
}

// faceCache lazily parses the system fonts once and derives sized faces on
// demand. A cache instance is scoped to a single render and is not safe for
// concurrent use.
type faceCache struct {
	once      sync.Once
	preferred string
	regular   *truetype.Font
	bold      *truetype.Font
	faces     map[faceKey]font.Face
}

func newFaceCache(preferred string) *faceCache {
	return &faceCache{preferred: preferred, faces: make(map[faceKey]font.Face)}
}

// face returns a font face for the given pixel size and weight.
func (c *faceCache) face(size int, bold bool) font.Face {
	c.once.Do(c.load)

	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f
	}

	src := c.regular
	if bold && c.bold != nil {
		src = c.bold
	}
	if src == nil {
		return basicfont.Face7x13
	}

	f := truetype.NewFace(src, &truetype.Options{Size: float64(size)})
	c.faces[key] = f
	return f
}

// load resolves and parses the host fonts. Failures are tolerated; face
// falls back to basicfont when nothing parses.
func (c *faceCache) load() {
	regular, bold := fontCandidates(c.preferred)
	c.regular = findAndParse(regular)
	c.bold = findAndParse(bold)
	if c.bold == nil {
		c.bold = c.regular
	}
}

func findAndParse(candidates []string) *truetype.Font {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return f
	}
	return nil
}
