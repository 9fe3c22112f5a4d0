package gamedata

// ShipClassDef defines a starship hull class loaded from JSON.
type ShipClassDef struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "cruiser")
	Name       string `json:"name"`       // Display name (e.g., "Cruiser")
	MaxAttack  int    `json:"maxAttack"`  // Attack strength at full health
	MaxDefense int    `json:"maxDefense"` // Defense strength at full health and crew
	MaxCrew    int    `json:"maxCrew"`    // Full crew complement
	MaxHealth  int    `json:"maxHealth"`  // Hull points
}

// ShipClassesFile represents the structure of ships.json.
type ShipClassesFile struct {
	Classes []ShipClassDef `json:"classes"`
}

// LoadShipClasses loads ship class definitions from the embedded ships.json file.
func LoadShipClasses() ([]ShipClassDef, error) {
	file, err := Load[ShipClassesFile]("ships.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadShipClasses loads ship class definitions, panicking on error.
func MustLoadShipClasses() []ShipClassDef {
	classes, err := LoadShipClasses()
	if err != nil {
		panic(err)
	}
	return classes
}
