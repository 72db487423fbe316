package shipping

import (
	"context"
	"fmt"
	"strings"

	"rajaprint-backend/internal/domain"
	"rajaprint-backend/pkg/logger"
)

// Tier identifies which matching strategy produced a zone.
type Tier int

const (
	TierNone Tier = iota
	TierCity
	TierProvince
	TierDefault
)

func (t Tier) String() string {
	switch t {
	case TierCity:
		return "city"
	case TierProvince:
		return "province"
	case TierDefault:
		return "default"
	default:
		return "none"
	}
}

// ZoneSource is the read side of the zone registry used during resolution.
type ZoneSource interface {
	ActiveByPriority(ctx context.Context) ([]domain.ShippingZone, error)
	FindDefault(ctx context.Context) (*domain.ShippingZone, error)
}

// Match is the outcome of a resolution. Zone is nil on a miss.
type Match struct {
	Zone     *domain.ShippingZone
	Tier     Tier
	City     string
	Country  string // normalized
	Province string // detected province, if any
}

func (m Match) Found() bool {
	return m.Zone != nil
}

// Resolver picks the shipping zone for a destination: city match, then
// province match, then the default zone.
type Resolver struct {
	zones     ZoneSource
	matcher   *Matcher
	provinces *ProvinceResolver
}

func NewResolver(zones ZoneSource, matcher *Matcher, provinces *ProvinceResolver) *Resolver {
	if matcher == nil {
		matcher = NewMatcher(DefaultFuzzyThreshold)
	}
	if provinces == nil {
		provinces = DefaultProvinces()
	}
	return &Resolver{zones: zones, matcher: matcher, provinces: provinces}
}

// Resolve returns the first zone, by ascending priority, serving city/country.
// A destination no zone covers is a Match with a nil Zone and a nil error;
// errors are reserved for invalid input and registry failures.
func (r *Resolver) Resolve(ctx context.Context, city, country string) (Match, error) {
	city = strings.TrimSpace(city)
	if city == "" || strings.TrimSpace(country) == "" {
		return Match{}, fmt.Errorf("%w: City and country are required", domain.ErrValidation)
	}

	log := logger.WithContext(ctx)
	m := Match{City: city, Country: NormalizeCountry(country)}

	zones, err := r.zones.ActiveByPriority(ctx)
	if err != nil {
		return Match{}, fmt.Errorf("load active zones: %w", err)
	}
	log.Debug().
		Str("city", city).
		Str("country", m.Country).
		Int("active_zones", len(zones)).
		Msg("Resolving shipping zone")

	for i := range zones {
		z := &zones[i]
		if sameCountry(z.Country, m.Country) && r.matcher.MatchesAny(city, z.Cities) {
			m.Zone, m.Tier = z, TierCity
			log.Debug().Str("zone", z.Name).Msg("Zone matched by city")
			return m, nil
		}
	}

	if province, ok := r.provinces.Resolve(city); ok {
		m.Province = province
		for i := range zones {
			z := &zones[i]
			if matchesProvince(z, province, m.Country) {
				m.Zone, m.Tier = z, TierProvince
				log.Debug().Str("zone", z.Name).Str("province", province).Msg("Zone matched by province")
				return m, nil
			}
		}
	} else {
		log.Debug().Str("city", city).Msg("No province known for city")
	}

	def, err := r.zones.FindDefault(ctx)
	if err != nil {
		return Match{}, fmt.Errorf("load default zone: %w", err)
	}
	if def != nil {
		m.Zone, m.Tier = def, TierDefault
		log.Debug().Str("zone", def.Name).Msg("Using default zone")
		return m, nil
	}

	log.Debug().Str("city", city).Str("country", m.Country).Msg("No shipping zone available")
	return m, nil
}

// matchesProvince accepts a zone tagged with the province, or an untagged
// zone whose name mentions it.
func matchesProvince(z *domain.ShippingZone, province, country string) bool {
	if !sameCountry(z.Country, country) {
		return false
	}
	if z.HasProvince() {
		return strings.EqualFold(strings.TrimSpace(*z.Province), province)
	}
	return strings.Contains(strings.ToLower(z.Name), strings.ToLower(province))
}
