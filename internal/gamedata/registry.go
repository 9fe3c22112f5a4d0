package gamedata

import "errors"

// ShipClassRegistry holds loaded ship class definitions and provides
// lookup utilities.
type ShipClassRegistry struct {
	classes map[string]*ShipClassDef
	all     []ShipClassDef
}

// NewShipClassRegistry creates a registry from loaded ship class definitions.
func NewShipClassRegistry(classes []ShipClassDef) *ShipClassRegistry {
	registry := &ShipClassRegistry{
		classes: make(map[string]*ShipClassDef),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadShipClassRegistry loads and creates a registry from the embedded ships.json.
func LoadShipClassRegistry() (*ShipClassRegistry, error) {
	classes, err := LoadShipClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no ship classes loaded from ships.json")
	}
	return NewShipClassRegistry(classes), nil
}

// MustLoadShipClassRegistry loads a registry, panicking on error.
func MustLoadShipClassRegistry() *ShipClassRegistry {
	registry, err := LoadShipClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the ship class with the given ID, or nil if not found.
func (r *ShipClassRegistry) GetByID(id string) *ShipClassDef {
	return r.classes[id]
}

// All returns all ship class definitions.
func (r *ShipClassRegistry) All() []ShipClassDef {
	return r.all
}

// Count returns the number of ship classes in the registry.
func (r *ShipClassRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// BaseClassRegistry
// =============================================================================

// BaseClassRegistry holds loaded starbase class definitions and provides
// lookup utilities.
type BaseClassRegistry struct {
	classes map[string]*BaseClassDef
	all     []BaseClassDef
}

// NewBaseClassRegistry creates a registry from loaded starbase class definitions.
func NewBaseClassRegistry(classes []BaseClassDef) *BaseClassRegistry {
	registry := &BaseClassRegistry{
		classes: make(map[string]*BaseClassDef),
		all:     classes,
	}
	for i := range classes {
		registry.classes[classes[i].ID] = &classes[i]
	}
	return registry
}

// LoadBaseClassRegistry loads and creates a registry from the embedded starbases.json.
func LoadBaseClassRegistry() (*BaseClassRegistry, error) {
	classes, err := LoadBaseClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no starbase classes loaded from starbases.json")
	}
	return NewBaseClassRegistry(classes), nil
}

// MustLoadBaseClassRegistry loads a registry, panicking on error.
func MustLoadBaseClassRegistry() *BaseClassRegistry {
	registry, err := LoadBaseClassRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the starbase class with the given ID, or nil if not found.
func (r *BaseClassRegistry) GetByID(id string) *BaseClassDef {
	return r.classes[id]
}

// All returns all starbase class definitions.
func (r *BaseClassRegistry) All() []BaseClassDef {
	return r.all
}

// Count returns the number of starbase classes in the registry.
func (r *BaseClassRegistry) Count() int {
	return len(r.all)
}
