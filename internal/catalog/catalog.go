// Package catalog loads the static effect catalog. The default catalog is
// embedded in the binary; an alternative file can be loaded for testing or
// for campaign specific rule sets.
package catalog

import (
	_ "embed"
	"os"
	"sync"

	"github.com/KirkDiggler/rpg-technique-api/internal/entities/technique"
	"github.com/KirkDiggler/rpg-technique-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/rpg-technique-api/internal/catalog Catalog

//go:embed data/effects.yaml
var defaultData []byte

// Catalog gives read access to the effects that can be added to a technique
type Catalog interface {
	// Categories returns the categories in display order
	Categories() []technique.Category

	// Effects returns every effect in catalog order
	Effects() []*technique.Effect

	// Effect looks up an effect by id
	Effect(id string) (*technique.Effect, bool)

	// EffectsByCategory returns the effects of one category in catalog order
	EffectsByCategory(category technique.Category) []*technique.Effect
}

// Static is an immutable catalog held in memory
type Static struct {
	effects []*technique.Effect
	byID    map[string]*technique.Effect
	byCateg map[technique.Category][]*technique.Effect
}

var loadDefault = sync.OnceValues(func() (*Static, error) {
	return Load(defaultData)
})

// Default returns the embedded catalog. It is parsed once per process.
func Default() (*Static, error) {
	return loadDefault()
}

// LoadFile reads a catalog from a YAML file on disk
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Load(data)
}

// Load parses and validates a YAML catalog
func Load(data []byte) (*Static, error) {
	effects, err := parse(data)
	if err != nil {
		return nil, err
	}
	return newStatic(effects), nil
}

func newStatic(effects []*technique.Effect) *Static {
	s := &Static{
		effects: effects,
		byID:    make(map[string]*technique.Effect, len(effects)),
		byCateg: make(map[technique.Category][]*technique.Effect),
	}
	for _, e := range effects {
		s.byID[e.ID] = e
		s.byCateg[e.Category] = append(s.byCateg[e.Category], e)
	}
	return s
}

// Categories returns the categories in display order
func (s *Static) Categories() []technique.Category {
	return technique.Categories()
}

// Effects returns every effect in catalog order
func (s *Static) Effects() []*technique.Effect {
	out := make([]*technique.Effect, len(s.effects))
	copy(out, s.effects)
	return out
}

// Effect looks up an effect by id
func (s *Static) Effect(id string) (*technique.Effect, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// EffectsByCategory returns the effects of one category in catalog order
func (s *Static) EffectsByCategory(category technique.Category) []*technique.Effect {
	effects := s.byCateg[category]
	out := make([]*technique.Effect, len(effects))
	copy(out, effects)
	return out
}

var _ Catalog = (*Static)(nil)
