package shipping

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-json"

	"rajaprint-backend/internal/domain"
)

//go:embed data/provinces.json
var provincesJSON []byte

type provinceGroup struct {
	Province string   `json:"province"`
	Cities   []string `json:"cities"`
}

// ProvinceResolver maps known city names to their province. It is immutable
// once built and safe for concurrent use.
type ProvinceResolver struct {
	byCity map[string]string
}

// ParseProvinces builds a resolver from a JSON array of
// {"province": ..., "cities": [...]} groups. A city listed under several
// provinces resolves to the last group that names it.
func ParseProvinces(data []byte) (*ProvinceResolver, error) {
	var groups []provinceGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decode province table: %w", err)
	}

	byCity := make(map[string]string)
	for _, g := range groups {
		if !domain.IsValidProvince(g.Province) {
			return nil, fmt.Errorf("unknown province %q in province table", g.Province)
		}
		for _, c := range g.Cities {
			if key := normalize(c); key != "" {
				byCity[key] = g.Province
			}
		}
	}
	return &ProvinceResolver{byCity: byCity}, nil
}

var (
	defaultProvinces     *ProvinceResolver
	defaultProvincesOnce sync.Once
)

// DefaultProvinces returns the resolver backed by the bundled city table.
func DefaultProvinces() *ProvinceResolver {
	defaultProvincesOnce.Do(func() {
		r, err := ParseProvinces(provincesJSON)
		if err != nil {
			panic(err)
		}
		defaultProvinces = r
	})
	return defaultProvinces
}

// Resolve looks up a city's province by exact name after trimming and lowercasing.
func (p *ProvinceResolver) Resolve(city string) (string, bool) {
	prov, ok := p.byCity[normalize(city)]
	return prov, ok
}

// Len is the number of known cities.
func (p *ProvinceResolver) Len() int {
	return len(p.byCity)
}
