package record

import "github.com/gogpu/gxgl/gx"

// ResourcePool stores the memory referenced by recorded commands.
// The device contract lets callers reuse array and texture memory after a
// draw, so every Add operation copies the bytes it is given.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	arrays   [][]byte
	textures []*gx.TexObj
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		arrays:   make([][]byte, 0, 32),
		textures: make([]*gx.TexObj, 0, 8),
	}
}

// AddArray copies data into the pool and returns its reference.
// A nil slice is kept as nil.
func (p *ResourcePool) AddArray(data []byte) ArrayRef {
	var cloned []byte
	if data != nil {
		cloned = append(make([]byte, 0, len(data)), data...)
	}
	p.arrays = append(p.arrays, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ArrayRef(uint32(len(p.arrays) - 1))
}

// GetArray returns the array for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetArray(ref ArrayRef) []byte {
	if int(ref) >= len(p.arrays) {
		return nil
	}
	return p.arrays[ref]
}

// ArrayCount returns the number of arrays in the pool.
func (p *ResourcePool) ArrayCount() int {
	return len(p.arrays)
}

// AddTexObj copies the descriptor and its image into the pool and returns
// its reference. A nil object is kept as nil.
func (p *ResourcePool) AddTexObj(obj *gx.TexObj) TexRef {
	var cloned *gx.TexObj
	if obj != nil {
		c := *obj
		if obj.Image != nil {
			c.Image = append(make([]byte, 0, len(obj.Image)), obj.Image...)
		}
		cloned = &c
	}
	p.textures = append(p.textures, cloned)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return TexRef(uint32(len(p.textures) - 1))
}

// GetTexObj returns the texture object for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetTexObj(ref TexRef) *gx.TexObj {
	if int(ref) >= len(p.textures) {
		return nil
	}
	return p.textures[ref]
}

// TexObjCount returns the number of texture objects in the pool.
func (p *ResourcePool) TexObjCount() int {
	return len(p.textures)
}

// Clear removes all resources from the pool.
// This does not release the underlying memory; use NewResourcePool for that.
func (p *ResourcePool) Clear() {
	p.arrays = p.arrays[:0]
	p.textures = p.textures[:0]
}
