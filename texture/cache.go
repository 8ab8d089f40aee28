package texture

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/singleflight"
)

// Cache shares decoded textures between spheres that reference the same file.
// Concurrent loads of one path are collapsed into a single decode.
type Cache struct {
	textures *lru.Cache // cleaned path -> *Texture
	group    singleflight.Group
	load     func(string) (*Texture, error)
}

// NewCache keeps at most size textures resident.
func NewCache(size int) (*Cache, error) {
	textures, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{textures: textures, load: Load}, nil
}

// Load returns the cached texture for path, loading it on first use.
// Failed loads are not cached.
func (c *Cache) Load(path string) (*Texture, error) {
	key := filepath.Clean(path)
	if val, ok := c.textures.Get(key); ok {
		return val.(*Texture), nil
	}

	val, err, _ := c.group.Do(key, func() (interface{}, error) {
		tex, err := c.load(key)
		if err != nil {
			return nil, err
		}
		c.textures.Add(key, tex)
		return tex, nil
	})
	if err != nil {
		return nil, err
	}
	return val.(*Texture), nil
}

// Len returns the number of resident textures.
func (c *Cache) Len() int {
	return c.textures.Len()
}
