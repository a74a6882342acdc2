// internal/domain/geo/gazetteer.go

package geo

import (
	"maandamano/internal/domain/protest"
)

// Gazetteer resolves categorical place names to coordinates. Records never
// carry coordinates inconsistent with their location, so every lookup for a
// given name returns the same point.
type Gazetteer struct {
	entries  map[string]protest.Coordinates
	fallback protest.Coordinates
}

// NewGazetteer creates a gazetteer from a fixed place table and a fallback
// center point used for unknown names.
func NewGazetteer(entries map[string]protest.Coordinates, fallback protest.Coordinates) *Gazetteer {
	copied := make(map[string]protest.Coordinates, len(entries))
	for name, coords := range entries {
		copied[name] = coords
	}

	return &Gazetteer{
		entries:  copied,
		fallback: fallback,
	}
}

// Lookup returns the coordinates for a place name and whether it is known
func (g *Gazetteer) Lookup(name string) (protest.Coordinates, bool) {
	coords, ok := g.entries[name]
	return coords, ok
}

// Resolve returns the coordinates for a place name, falling back to the
// gazetteer's center point for unknown names.
func (g *Gazetteer) Resolve(name string) protest.Coordinates {
	if coords, ok := g.entries[name]; ok {
		return coords
	}
	return g.fallback
}

// Names returns all known place names
func (g *Gazetteer) Names() []string {
	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	return names
}

// NewKenyaGazetteer creates the default gazetteer of major Kenyan cities,
// with Nairobi as the fallback center.
func NewKenyaGazetteer() *Gazetteer {
	nairobi := protest.Coordinates{Latitude: -1.2921, Longitude: 36.8219}

	return &Gazetteer{
		entries: map[string]protest.Coordinates{
			"Nairobi": nairobi,
			"Mombasa": {Latitude: -4.0435, Longitude: 39.6682},
			"Kisumu":  {Latitude: -0.0917, Longitude: 34.7680},
			"Nakuru":  {Latitude: -0.3031, Longitude: 36.0800},
			"Eldoret": {Latitude: 0.5143, Longitude: 35.2698},
			"Thika":   {Latitude: -1.0332, Longitude: 37.0691},
			"Malindi": {Latitude: -3.2180, Longitude: 40.1170},
			"Garissa": {Latitude: -0.4569, Longitude: 39.6400},
		},
		fallback: nairobi,
	}
}
