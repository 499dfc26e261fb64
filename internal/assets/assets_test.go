package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func encoded(t *testing.T, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, checker()))
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"Checker.png":    {Data: encoded(t, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })},
		"DonkeyCube.bmp": {Data: encoded(t, func(b *bytes.Buffer, i image.Image) error { return bmp.Encode(b, i) })},
		"broken.png":     {Data: []byte("not an image")},
	}
}

func TestImageDecodesFormats(t *testing.T) {
	m := NewManagerFS(testFS(t))

	for _, name := range []string{"Checker.png", "DonkeyCube.bmp"} {
		t.Run(name, func(t *testing.T) {
			img, err := m.Image(name)
			require.NoError(t, err)

			assert.Equal(t, image.Rect(0, 0, 4, 2), img.Rect)
			assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 0))
			assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))
			assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 1))
		})
	}
}

func TestImageIsCached(t *testing.T) {
	m := NewManagerFS(testFS(t))

	first, err := m.Image("Checker.png")
	require.NoError(t, err)
	second, err := m.Image("Checker.png")
	require.NoError(t, err)

	assert.Same(t, first, second)
	hits, misses := m.Cache().Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
	assert.Equal(t, 1, m.Cache().Len())

	m.Close()
	assert.Equal(t, 0, m.Cache().Len())
}

func TestImageErrors(t *testing.T) {
	m := NewManagerFS(testFS(t))

	_, err := m.Image("missing.png")
	assert.Error(t, err)

	_, err = m.Image("broken.png")
	assert.Error(t, err)

	assert.Equal(t, 0, m.Cache().Len(), "failures are not cached")
}

func TestNewManagerReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	fsys := testFS(t)
	for name, f := range fsys {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}

	img, err := NewManager(dir).Image("DonkeyCube.bmp")
	require.NoError(t, err)
	assert.Equal(t, 4, img.Rect.Dx())
}

func TestToRGBANormalizesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 5, 7))
	src.SetRGBA(2, 3, color.RGBA{G: 9, A: 255})

	dst := toRGBA(src)
	assert.Equal(t, image.Rect(0, 0, 3, 4), dst.Rect)
	assert.Equal(t, color.RGBA{G: 9, A: 255}, dst.RGBAAt(0, 0))
}

func TestImagesKeepsOrder(t *testing.T) {
	m := NewManagerFS(testFS(t))

	imgs, err := m.Images("DonkeyCube.bmp", "Checker.png")
	require.NoError(t, err)
	require.Len(t, imgs, 2)

	bmpImg, _ := m.Image("DonkeyCube.bmp")
	pngImg, _ := m.Image("Checker.png")
	assert.Same(t, bmpImg, imgs[0])
	assert.Same(t, pngImg, imgs[1])
}

func TestImagesFailsOnAnyError(t *testing.T) {
	m := NewManagerFS(testFS(t))

	imgs, err := m.Images("Checker.png", "missing.png")
	assert.Error(t, err)
	assert.Nil(t, imgs)
}
