package dino

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dinorun/internal/config"
)

// factory builds one obstacle of a registered variant.
type factory func(s spawner) Obstacle

// VariantInfo describes a registered obstacle variant.
type VariantInfo struct {
	Kind        string
	Description string
}

var (
	factories    = make(map[string]factory)
	descriptions = make(map[string]string)
	variantsMu   sync.RWMutex
)

// register adds a variant factory. Panics on a duplicate kind.
func register(kind, description string, f factory) {
	variantsMu.Lock()
	defer variantsMu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("dino: variant %q already registered", kind))
	}
	factories[kind] = f
	descriptions[kind] = description
}

// Variants returns all registered variants sorted by kind.
func Variants() []VariantInfo {
	variantsMu.RLock()
	defer variantsMu.RUnlock()

	result := make([]VariantInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, VariantInfo{Kind: kind, Description: descriptions[kind]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})
	return result
}

// VariantExists reports whether kind is a registered variant.
func VariantExists(kind string) bool {
	variantsMu.RLock()
	defer variantsMu.RUnlock()

	_, ok := factories[kind]
	return ok
}

func createVariant(kind string, s spawner) (Obstacle, error) {
	variantsMu.RLock()
	f, ok := factories[kind]
	variantsMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("dino: unknown obstacle variant %q", kind)
	}
	return f(s), nil
}

func init() {
	register(config.KindStatic, "ground block, 20 or 30 wide", newStatic)
	register(config.KindOscillating, "block bouncing up and down mid-air", newOscillating)
	register(config.KindMulti, "2-4 ground blocks moving as one", newMulti)
	register(config.KindFlying, "airborne triangle", newFlying)
}
