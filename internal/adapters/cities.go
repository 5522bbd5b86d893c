package adapters

// City describes one supported city and its upstream data endpoints.
type City struct {
	Code      string
	Name      string
	Lat       float64
	Lng       float64
	CrimeURL  string
	CivicURL  string
	CameraURL string
}

// CityRegistry resolves the closed set of supported city codes. Unknown
// codes fall back to the default city rather than erroring.
type CityRegistry struct {
	cities      map[string]City
	defaultCode string
}

// NewCityRegistry builds a registry from the given cities.
func NewCityRegistry(defaultCode string, cities ...City) *CityRegistry {
	m := make(map[string]City, len(cities))
	for _, c := range cities {
		m[c.Code] = c
	}
	if _, ok := m[defaultCode]; !ok && len(cities) > 0 {
		defaultCode = cities[0].Code
	}
	return &CityRegistry{cities: m, defaultCode: defaultCode}
}

// DefaultRegistry returns the five supported cities with their public
// open-data endpoints.
func DefaultRegistry() *CityRegistry {
	return NewCityRegistry("chi",
		City{
			Code: "chi", Name: "Chicago", Lat: 41.8781, Lng: -87.6298,
			CrimeURL:  "https://data.cityofchicago.org/resource/ijzp-q8t2.json?$limit=100&$order=date%20DESC",
			CivicURL:  "https://data.cityofchicago.org/resource/v6vf-nfxy.json?$limit=100&$order=created_date%20DESC",
			CameraURL: "https://data.cityofchicago.org/resource/cameras.json?$limit=100",
		},
		City{
			Code: "nyc", Name: "New York", Lat: 40.7128, Lng: -74.0060,
			CrimeURL:  "https://data.cityofnewyork.us/resource/5uac-w243.json?$limit=100",
			CivicURL:  "https://data.cityofnewyork.us/resource/erm2-nwe9.json?$limit=100&$order=created_date%20DESC",
			CameraURL: "https://data.cityofnewyork.us/resource/cameras.json?$limit=100",
		},
		City{
			Code: "la", Name: "Los Angeles", Lat: 34.0522, Lng: -118.2437,
			CrimeURL:  "https://data.lacity.org/resource/2nrs-mtv8.json?$limit=100",
			CivicURL:  "https://data.lacity.org/resource/rq3b-xjk8.json?$limit=100",
			CameraURL: "https://data.lacity.org/resource/cameras.json?$limit=100",
		},
		City{
			Code: "sf", Name: "San Francisco", Lat: 37.7749, Lng: -122.4194,
			CrimeURL:  "https://data.sfgov.org/resource/wg3w-h783.json?$limit=100",
			CivicURL:  "https://data.sfgov.org/resource/vw6y-z8j6.json?$limit=100",
			CameraURL: "https://data.sfgov.org/resource/cameras.json?$limit=100",
		},
		City{
			Code: "sea", Name: "Seattle", Lat: 47.6062, Lng: -122.3321,
			CrimeURL:  "https://data.seattle.gov/resource/tazs-3rd5.json?$limit=100",
			CivicURL:  "https://data.seattle.gov/resource/wewu-6fq6.json?$limit=100",
			CameraURL: "https://data.seattle.gov/resource/cameras.json?$limit=100",
		},
	)
}

// Resolve returns the city for a code, or the default city for unknown codes.
func (r *CityRegistry) Resolve(code string) City {
	if c, ok := r.cities[code]; ok {
		return c
	}
	return r.cities[r.defaultCode]
}

// Default returns the registry's default city.
func (r *CityRegistry) Default() City {
	return r.cities[r.defaultCode]
}
