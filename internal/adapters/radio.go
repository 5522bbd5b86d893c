package adapters

import "github.com/citywatch/citywatch/internal/models"

// RadioDirectory serves the static per-city list of public scanner and
// radio streams. There is no upstream API; the directory is maintained
// in code alongside the city registry.
type RadioDirectory struct {
	streams map[string][]models.RadioStream
	def     string
}

// DefaultRadioDirectory returns the built-in stream directory.
func DefaultRadioDirectory() *RadioDirectory {
	return &RadioDirectory{
		def: "chi",
		streams: map[string][]models.RadioStream{
			"chi": {
				{ID: "chi-pd-1", Name: "Chicago Police Zone 1", URL: "https://broadcastify.cdnstream1.com/chi-pd-z1", Frequency: "460.375", Genre: "police", City: "chi"},
				{ID: "chi-fire", Name: "Chicago Fire Main", URL: "https://broadcastify.cdnstream1.com/chi-fire", Frequency: "154.190", Genre: "fire", City: "chi"},
				{ID: "chi-ems", Name: "Chicago EMS Dispatch", URL: "https://broadcastify.cdnstream1.com/chi-ems", Frequency: "155.160", Genre: "ems", City: "chi"},
			},
			"nyc": {
				{ID: "nyc-pd-citywide", Name: "NYPD Citywide", URL: "https://broadcastify.cdnstream1.com/nyc-pd", Frequency: "476.850", Genre: "police", City: "nyc"},
				{ID: "nyc-fdny", Name: "FDNY Manhattan", URL: "https://broadcastify.cdnstream1.com/nyc-fdny", Frequency: "154.250", Genre: "fire", City: "nyc"},
			},
			"la": {
				{ID: "la-pd", Name: "LAPD Central Division", URL: "https://broadcastify.cdnstream1.com/la-pd", Frequency: "484.712", Genre: "police", City: "la"},
				{ID: "la-fire", Name: "LAFD Dispatch", URL: "https://broadcastify.cdnstream1.com/la-fire", Frequency: "800.000", Genre: "fire", City: "la"},
			},
			"sf": {
				{ID: "sf-pd", Name: "SFPD Dispatch", URL: "https://broadcastify.cdnstream1.com/sf-pd", Frequency: "460.025", Genre: "police", City: "sf"},
			},
			"sea": {
				{ID: "sea-pd", Name: "Seattle Police North", URL: "https://broadcastify.cdnstream1.com/sea-pd", Frequency: "460.075", Genre: "police", City: "sea"},
				{ID: "sea-fire", Name: "Seattle Fire Dispatch", URL: "https://broadcastify.cdnstream1.com/sea-fire", Frequency: "154.130", Genre: "fire", City: "sea"},
			},
		},
	}
}

// Streams returns the stream descriptors for a city code; unknown codes
// fall back to the default city's list.
func (d *RadioDirectory) Streams(cityCode string) []models.RadioStream {
	if streams, ok := d.streams[cityCode]; ok {
		return streams
	}
	return d.streams[d.def]
}
