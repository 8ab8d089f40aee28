package texture

import (
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/echoflaresat/spheretracer/vectors"
)

func TestCacheSharesTextures(t *testing.T) {
	path := writeFile(t, "tex.ppm", append([]byte("P6\n1 1\n255\n"), 0, 0, 255))

	cache, err := NewCache(4)
	if err != nil {
		t.Fatal(err)
	}

	a, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	b, err := cache.Load(filepath.Join(filepath.Dir(path), ".", "tex.ppm"))
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if a != b {
		t.Error("same path decoded twice")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestCacheConcurrentLoads(t *testing.T) {
	cache, err := NewCache(4)
	if err != nil {
		t.Fatal(err)
	}

	shared, err := New(1, 1, []vectors.Vec3{{X: 1}})
	if err != nil {
		t.Fatal(err)
	}
	var calls atomic.Int32
	release := make(chan struct{})
	cache.load = func(string) (*Texture, error) {
		calls.Add(1)
		<-release
		return shared, nil
	}

	var wg sync.WaitGroup
	results := make([]*Texture, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cache.Load("shared.ppm")
		}(i)
	}
	close(release)
	wg.Wait()

	for i, r := range results {
		if r != shared {
			t.Fatalf("result %d = %p, want %p", i, r, shared)
		}
	}
	if n := calls.Load(); n < 1 || n > int32(len(results)) {
		t.Errorf("load calls = %d", n)
	}
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	cache, err := NewCache(2)
	if err != nil {
		t.Fatal(err)
	}
	fail := errors.New("boom")
	calls := 0
	cache.load = func(string) (*Texture, error) {
		calls++
		return nil, fail
	}

	for i := 0; i < 2; i++ {
		if _, err := cache.Load("x.ppm"); !errors.Is(err, fail) {
			t.Fatalf("attempt %d: got %v", i, err)
		}
	}
	if calls != 2 {
		t.Errorf("load calls = %d, want 2", calls)
	}
	if cache.Len() != 0 {
		t.Errorf("Len = %d, want 0", cache.Len())
	}
}
