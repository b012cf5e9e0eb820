package texconv

import (
	"bytes"
	"errors"
	"testing"
)

func TestCacheReusesEncoding(t *testing.T) {
	c := NewCache(4)
	img := bytes.Repeat([]byte{255, 0, 0, 255}, 4*4)

	first, err := c.Encode(img, 4, 4)
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	again, _ := c.Encode(bytes.Clone(img), 4, 4)
	if &first[0] != &again[0] {
		t.Error("identical pixels were encoded twice")
	}
	if hits, misses := c.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits %d misses, want 1/1", hits, misses)
	}

	want, _ := EncodeRGB5A3(img, 4, 4)
	if !bytes.Equal(first, want) {
		t.Error("cached encoding differs from EncodeRGB5A3")
	}
}

func TestCacheKeysIncludeSize(t *testing.T) {
	c := NewCache(4)
	img := make([]byte, 8*4*4)
	a, _ := c.Encode(img, 8, 4)
	b, _ := c.Encode(img, 4, 8)
	if len(a) != len(b) || &a[0] == &b[0] {
		t.Error("images of different shape shared an entry")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	imgs := [][]byte{
		bytes.Repeat([]byte{1, 1, 1, 255}, 4),
		bytes.Repeat([]byte{2, 2, 2, 255}, 4),
		bytes.Repeat([]byte{3, 3, 3, 255}, 4),
	}
	c.Encode(imgs[0], 2, 2)
	c.Encode(imgs[1], 2, 2)
	c.Encode(imgs[0], 2, 2) // 0 is now most recent
	c.Encode(imgs[2], 2, 2) // evicts 1

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	_, before := c.Stats()
	c.Encode(imgs[0], 2, 2)
	if _, after := c.Stats(); after != before {
		t.Error("recently used image was evicted")
	}
	c.Encode(imgs[1], 2, 2)
	if _, after := c.Stats(); after != before+1 {
		t.Error("least recently used image was kept")
	}
}

func TestCacheShortBuffer(t *testing.T) {
	c := NewCache(0)
	if _, err := c.Encode(make([]byte, 15), 2, 2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("got %v, want ErrShortBuffer", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed encode was cached")
	}
}

func TestCacheHashCollisionEncodesFresh(t *testing.T) {
	c := NewCache(4)
	red := bytes.Repeat([]byte{255, 0, 0, 255}, 4)
	blue := bytes.Repeat([]byte{0, 0, 255, 255}, 4)
	c.Encode(red, 2, 2)

	// File the red entry under the key of the blue image.
	redKey, blueKey := keyOf(red, 2, 2), keyOf(blue, 2, 2)
	n := c.entries[redKey]
	delete(c.entries, redKey)
	n.key = blueKey
	c.entries[blueKey] = n

	got, err := c.Encode(blue, 2, 2)
	if err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	want, _ := EncodeRGB5A3(blue, 2, 2)
	if !bytes.Equal(got, want) {
		t.Error("colliding key returned another image's encoding")
	}
	if hits, _ := c.Stats(); hits != 0 {
		t.Errorf("collision counted as %d hits", hits)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheKeepsSourceCopy(t *testing.T) {
	c := NewCache(4)
	img := bytes.Repeat([]byte{9, 9, 9, 255}, 4)
	first, _ := c.Encode(img, 2, 2)
	img[0] = 200
	second, _ := c.Encode(img, 2, 2)
	if bytes.Equal(first, second) {
		t.Error("mutated caller pixels matched the cached entry")
	}
}
