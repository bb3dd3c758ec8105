package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"bensin/internal/models"
)

//go:embed vehicles.json
var defaultVehiclesJSON []byte

// Catalog is the read-only, ordered list of selectable vehicles.
type Catalog struct {
	vehicles []models.Vehicle
	byID     map[string]models.Vehicle
}

// New builds a catalog from vehicle JSON. A nil slice loads the
// embedded default catalog.
func New(raw []byte) (*Catalog, error) {
	if raw == nil {
		raw = defaultVehiclesJSON
	}

	var vehicles []models.Vehicle
	if err := json.Unmarshal(raw, &vehicles); err != nil {
		return nil, fmt.Errorf("unmarshal vehicle catalog: %w", err)
	}
	if len(vehicles) == 0 {
		return nil, fmt.Errorf("vehicle catalog is empty")
	}

	byID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		if v.ID == "" || v.Name == "" {
			return nil, fmt.Errorf("vehicle entry missing id or name: %+v", v)
		}
		if v.KmPerLiter <= 0 {
			return nil, fmt.Errorf("vehicle %q has non-positive km/l: %g", v.ID, v.KmPerLiter)
		}
		if _, exists := byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate vehicle id %q", v.ID)
		}
		byID[v.ID] = v
	}

	return &Catalog{vehicles: vehicles, byID: byID}, nil
}

// Load builds a catalog from a JSON file on disk.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vehicle catalog: %w", err)
	}
	return New(raw)
}

// Vehicles returns the vehicles in catalog order.
func (c *Catalog) Vehicles() []models.Vehicle {
	out := make([]models.Vehicle, len(c.vehicles))
	copy(out, c.vehicles)
	return out
}

// Lookup returns the vehicle with the given id.
func (c *Catalog) Lookup(id string) (models.Vehicle, error) {
	v, ok := c.byID[id]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("no vehicle found with id %q", id)
	}
	return v, nil
}
