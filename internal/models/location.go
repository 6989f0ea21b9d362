package models

import "strings"

// Location is a monitored traffic junction. The set of locations is
// compiled in and never changes at runtime.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Locations lists the supported monitoring locations in display order.
var Locations = []Location{
	{ID: "silk_board", Name: "Silk Board", Latitude: 12.9177, Longitude: 77.6233},
	{ID: "kr_puram", Name: "KR Puram", Latitude: 13.0075, Longitude: 77.6959},
	{ID: "whitefield", Name: "Whitefield", Latitude: 12.9698, Longitude: 77.7500},
	{ID: "hebbal", Name: "Hebbal", Latitude: 13.0358, Longitude: 77.5970},
}

var locationsByID = func() map[string]Location {
	m := make(map[string]Location, len(Locations))
	for _, loc := range Locations {
		m[loc.ID] = loc
	}
	return m
}()

// LocationByID looks up a location by its identifier.
func LocationByID(id string) (Location, bool) {
	loc, ok := locationsByID[id]
	return loc, ok
}

// LocationIDs returns the supported identifiers in display order.
func LocationIDs() []string {
	ids := make([]string, len(Locations))
	for i, loc := range Locations {
		ids[i] = loc.ID
	}
	return ids
}

// NormalizePlace maps user input like "Silk Board" to the identifier form
// used as a lookup key ("silk_board").
func NormalizePlace(place string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(place)), " ", "_")
}
