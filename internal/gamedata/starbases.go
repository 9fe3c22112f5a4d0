package gamedata

// BaseClassDef defines a starbase hull class loaded from JSON.
// Starbases have no attack stat of their own; their firepower comes
// from docked ships.
type BaseClassDef struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "outpost")
	Name       string `json:"name"`       // Display name (e.g., "Outpost")
	MaxDefense int    `json:"maxDefense"` // Defense strength at full health
	MaxHealth  int    `json:"maxHealth"`  // Hull points
}

// BaseClassesFile represents the structure of starbases.json.
type BaseClassesFile struct {
	Classes []BaseClassDef `json:"classes"`
}

// LoadBaseClasses loads starbase class definitions from the embedded starbases.json file.
func LoadBaseClasses() ([]BaseClassDef, error) {
	file, err := Load[BaseClassesFile]("starbases.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadBaseClasses loads starbase class definitions, panicking on error.
func MustLoadBaseClasses() []BaseClassDef {
	classes, err := LoadBaseClasses()
	if err != nil {
		panic(err)
	}
	return classes
}
