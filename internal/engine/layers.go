package engine

import (
	"encoding/json"
	"fmt"
	"math"
)

// MaxLayers is the number of distinct layers a LayerMask can address.
const MaxLayers = 32

// Default layer indices used by the sandbox scenes.
const (
	LayerDefault = 0
	LayerStairs  = 1
	LayerClimb   = 2
	LayerTrigger = 3
	LayerAgent   = 4
)

// LayerMask is a bit set of layers.
type LayerMask uint32

const (
	NothingMask    LayerMask = 0
	EverythingMask LayerMask = ^LayerMask(0)
)

// MaskOf builds a mask containing the given layers. Out-of-range layers are ignored.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < MaxLayers {
			m |= 1 << uint(l)
		}
	}
	return m
}

// Contains reports whether the layer is part of the mask.
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= MaxLayers {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// Without returns the mask with the given layers cleared.
func (m LayerMask) Without(layers ...int) LayerMask {
	return m &^ MaskOf(layers...)
}

// Layers lists the layers set in the mask in ascending order.
func (m LayerMask) Layers() []int {
	var out []int
	for l := 0; l < MaxLayers; l++ {
		if m.Contains(l) {
			out = append(out, l)
		}
	}
	return out
}

// MarshalJSON writes -1 for everything, otherwise the list of layers.
func (m LayerMask) MarshalJSON() ([]byte, error) {
	if m == EverythingMask {
		return []byte("-1"), nil
	}
	layers := m.Layers()
	if layers == nil {
		layers = []int{}
	}
	return json.Marshal(layers)
}

// UnmarshalJSON accepts a signed integer bit set (-1 meaning everything) or a list of layers.
func (m *LayerMask) UnmarshalJSON(data []byte) error {
	var bits int64
	if err := json.Unmarshal(data, &bits); err == nil {
		if bits < -1 || bits > math.MaxUint32 {
			return fmt.Errorf("layer mask %d out of range [-1, %d]", bits, uint32(math.MaxUint32))
		}
		*m = LayerMask(uint32(bits))
		return nil
	}
	var layers []int
	if err := json.Unmarshal(data, &layers); err != nil {
		return fmt.Errorf("failed to parse layer mask %s: %w", data, err)
	}
	for _, l := range layers {
		if l < 0 || l >= MaxLayers {
			return fmt.Errorf("layer %d out of range [0, %d)", l, MaxLayers)
		}
	}
	*m = MaskOf(layers...)
	return nil
}
