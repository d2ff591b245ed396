// Package geo provides the static airport table and the great-circle
// distance / route-classification / hub-ranking helpers built on top of it
// (component C1). The table below is small enough to hand-maintain; a
// larger deployment would generate it from a CSV the way spec.md §9
// suggests — left as a TODO below rather than built, since no CSV source
// was retrieved for this pack.
package geo

import "github.com/flightdeal/dealfinder/internal/models"

// Airports is the static IATA3 -> Airport table. Kept intentionally small:
// it only needs to cover the hubs and alternates referenced by
// internal/heuristics' static substitution tables.
//
// TODO: generate this table from a CSV (IATA, name, city, country, lat,
// lon, tz) once one is available, per spec.md §9.
var Airports = map[string]models.Airport{
	"JFK": {Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "US", Lat: 40.6413, Lon: -73.7781, Timezone: "America/New_York"},
	"EWR": {Code: "EWR", Name: "Newark Liberty International", City: "Newark", Country: "US", Lat: 40.6895, Lon: -74.1745, Timezone: "America/New_York"},
	"LGA": {Code: "LGA", Name: "LaGuardia", City: "New York", Country: "US", Lat: 40.7769, Lon: -73.8740, Timezone: "America/New_York"},
	"BOS": {Code: "BOS", Name: "Logan International", City: "Boston", Country: "US", Lat: 42.3656, Lon: -71.0096, Timezone: "America/New_York"},
	"DCA": {Code: "DCA", Name: "Ronald Reagan Washington National", City: "Washington", Country: "US", Lat: 38.8512, Lon: -77.0402, Timezone: "America/New_York"},
	"IAD": {Code: "IAD", Name: "Washington Dulles International", City: "Washington", Country: "US", Lat: 38.9531, Lon: -77.4565, Timezone: "America/New_York"},
	"BWI": {Code: "BWI", Name: "Baltimore/Washington International", City: "Baltimore", Country: "US", Lat: 39.1774, Lon: -76.6684, Timezone: "America/New_York"},
	"PHL": {Code: "PHL", Name: "Philadelphia International", City: "Philadelphia", Country: "US", Lat: 39.8744, Lon: -75.2424, Timezone: "America/New_York"},

	"LAX": {Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "US", Lat: 33.9416, Lon: -118.4085, Timezone: "America/Los_Angeles"},
	"BUR": {Code: "BUR", Name: "Hollywood Burbank", City: "Burbank", Country: "US", Lat: 34.2007, Lon: -118.3590, Timezone: "America/Los_Angeles"},
	"ONT": {Code: "ONT", Name: "Ontario International", City: "Ontario", Country: "US", Lat: 34.0560, Lon: -117.6012, Timezone: "America/Los_Angeles"},
	"LGB": {Code: "LGB", Name: "Long Beach Airport", City: "Long Beach", Country: "US", Lat: 33.8177, Lon: -118.1516, Timezone: "America/Los_Angeles"},
	"SNA": {Code: "SNA", Name: "John Wayne Airport", City: "Santa Ana", Country: "US", Lat: 33.6757, Lon: -117.8682, Timezone: "America/Los_Angeles"},
	"SAN": {Code: "SAN", Name: "San Diego International", City: "San Diego", Country: "US", Lat: 32.7338, Lon: -117.1933, Timezone: "America/Los_Angeles"},

	"SFO": {Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "US", Lat: 37.6213, Lon: -122.3790, Timezone: "America/Los_Angeles"},
	"OAK": {Code: "OAK", Name: "Oakland International", City: "Oakland", Country: "US", Lat: 37.7126, Lon: -122.2197, Timezone: "America/Los_Angeles"},
	"SJC": {Code: "SJC", Name: "San Jose International", City: "San Jose", Country: "US", Lat: 37.3639, Lon: -121.9289, Timezone: "America/Los_Angeles"},

	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "US", Lat: 47.4502, Lon: -122.3088, Timezone: "America/Los_Angeles"},
	"PDX": {Code: "PDX", Name: "Portland International", City: "Portland", Country: "US", Lat: 45.5898, Lon: -122.5951, Timezone: "America/Los_Angeles"},

	"ORD": {Code: "ORD", Name: "O'Hare International", City: "Chicago", Country: "US", Lat: 41.9742, Lon: -87.9073, Timezone: "America/Chicago"},
	"MDW": {Code: "MDW", Name: "Midway International", City: "Chicago", Country: "US", Lat: 41.7868, Lon: -87.7522, Timezone: "America/Chicago"},

	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Country: "US", Lat: 33.6407, Lon: -84.4277, Timezone: "America/New_York"},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "US", Lat: 32.8998, Lon: -97.0403, Timezone: "America/Chicago"},
	"DEN": {Code: "DEN", Name: "Denver International", City: "Denver", Country: "US", Lat: 39.8561, Lon: -104.6737, Timezone: "America/Denver"},
	"IAH": {Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Country: "US", Lat: 29.9902, Lon: -95.3368, Timezone: "America/Chicago"},

	"MIA": {Code: "MIA", Name: "Miami International", City: "Miami", Country: "US", Lat: 25.7959, Lon: -80.2870, Timezone: "America/New_York"},
	"FLL": {Code: "FLL", Name: "Fort Lauderdale-Hollywood International", City: "Fort Lauderdale", Country: "US", Lat: 26.0726, Lon: -80.1527, Timezone: "America/New_York"},
	"PBI": {Code: "PBI", Name: "Palm Beach International", City: "West Palm Beach", Country: "US", Lat: 26.6832, Lon: -80.0956, Timezone: "America/New_York"},

	"LHR": {Code: "LHR", Name: "Heathrow", City: "London", Country: "GB", Lat: 51.4700, Lon: -0.4543, Timezone: "Europe/London"},
	"CDG": {Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "FR", Lat: 49.0097, Lon: 2.5479, Timezone: "Europe/Paris"},
	"NRT": {Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "JP", Lat: 35.7720, Lon: 140.3929, Timezone: "Asia/Tokyo"},
}

// Lookup returns the Airport for code and whether it was found.
func Lookup(code string) (models.Airport, bool) {
	a, ok := Airports[code]
	return a, ok
}
