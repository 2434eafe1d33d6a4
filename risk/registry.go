package risk

import "go-surgesense/types"

// cityRegistry is the fixed set of supported cities. Order matters: it
// is the tie-break order when two cities score identically in a
// comparison.
var cityRegistry = []types.City{
	{Name: "Mumbai", Lat: 19.0760, Lon: 72.8777},
	{Name: "Delhi", Lat: 28.6139, Lon: 77.2090},
	{Name: "Bangalore", Lat: 12.9716, Lon: 77.5946},
	{Name: "Chennai", Lat: 13.0827, Lon: 80.2707},
	{Name: "Kolkata", Lat: 22.5726, Lon: 88.3639},
	{Name: "Hyderabad", Lat: 17.3850, Lon: 78.4867},
	{Name: "Pune", Lat: 18.5204, Lon: 73.8567},
	{Name: "Ahmedabad", Lat: 23.0225, Lon: 72.5714},
	{Name: "Jaipur", Lat: 26.9124, Lon: 75.7873},
	{Name: "Surat", Lat: 21.1702, Lon: 72.8311},
}

// LookupCity resolves a city name against the registry.
func LookupCity(name string) (types.City, bool) {
	for _, c := range cityRegistry {
		if c.Name == name {
			return c, true
		}
	}
	return types.City{}, false
}

// registryIndex returns the registry position of a city, used for
// deterministic tie-breaking.
func registryIndex(name string) int {
	for i, c := range cityRegistry {
		if c.Name == name {
			return i
		}
	}
	return len(cityRegistry)
}

// RegisteredCities lists every supported city.
func RegisteredCities() []types.City {
	return append([]types.City(nil), cityRegistry...)
}

// DefaultComparisonCities is the subset compared when the caller names
// none.
func DefaultComparisonCities() []string {
	return []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"}
}
