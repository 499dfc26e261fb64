// Package assets handles texture image loading and caching.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"sync"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/sync/errgroup"

	"github.com/SignalWalker/PhysCubes/internal/logger"
)

// Manager loads files from an asset root. Decoded images are cached by path.
type Manager struct {
	fsys  fs.FS
	cache *Cache
}

// NewManager creates a manager rooted at the directory dir.
func NewManager(dir string) *Manager {
	return NewManagerFS(os.DirFS(dir))
}

// NewManagerFS creates a manager over an arbitrary file system.
func NewManagerFS(fsys fs.FS) *Manager {
	return &Manager{
		fsys:  fsys,
		cache: NewCache(),
	}
}

// Load reads a file relative to the asset root.
func (m *Manager) Load(name string) ([]byte, error) {
	data, err := fs.ReadFile(m.fsys, path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", name, err)
	}
	return data, nil
}

// Image decodes a PNG or BMP file into RGBA. The format is sniffed from the
// content, not the extension. Safe for concurrent use.
func (m *Manager) Image(name string) (*image.RGBA, error) {
	if img, ok := m.cache.Get(name); ok {
		return img, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	img := toRGBA(src)
	m.cache.Set(name, img)

	logger.Debug("image decoded",
		zap.String("path", name),
		zap.String("format", format),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)
	return img, nil
}

// Images decodes names concurrently and returns them in the same order.
// The first failure is returned and the remaining results are discarded.
func (m *Manager) Images(names ...string) ([]*image.RGBA, error) {
	out := make([]*image.RGBA, len(names))

	var g errgroup.Group
	for i, name := range names {
		g.Go(func() error {
			img, err := m.Image(name)
			if err != nil {
				return err
			}
			out[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Cache returns the image cache.
func (m *Manager) Cache() *Cache {
	return m.cache
}

// Close drops every cached image.
func (m *Manager) Close() {
	m.cache.Clear()
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Cache is a simple in-memory cache of decoded images.
type Cache struct {
	data map[string]*image.RGBA
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*image.RGBA),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*image.RGBA)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
