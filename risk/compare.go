package risk

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"go-surgesense/types"
)

// EnvResolver mirrors surge.EnvResolver; declared here so the package
// stays independent of the surge package.
type EnvResolver func(lat, lon float64) (types.EnvironmentalReading, error)

// Service runs the health-risk scorer over the city registry. Stateless
// apart from the injected resolver; safe for concurrent use.
type Service struct {
	Resolve EnvResolver
	Now     func() time.Time
}

// NewService builds a risk service around a resolver.
func NewService(resolve EnvResolver) *Service {
	return &Service{Resolve: resolve, Now: time.Now}
}

// ErrUnknownCity is returned when a requested city is not registered.
type ErrUnknownCity struct {
	City string
}

func (e ErrUnknownCity) Error() string {
	return fmt.Sprintf("city %q not found in registry", e.City)
}

// ScoreCityRisk resolves a city's conditions and produces its risk
// profile with advisory. Weather failure degrades to the default
// reading; only an unregistered name is an error.
func (s *Service) ScoreCityRisk(cityName string) (types.CityRiskProfile, error) {
	city, ok := LookupCity(cityName)
	if !ok {
		return types.CityRiskProfile{}, ErrUnknownCity{City: cityName}
	}

	reading, err := s.Resolve(city.Lat, city.Lon)
	if err != nil {
		log.Printf("Conditions lookup failed for %s: %v. Using default conditions.", city.Name, err)
		reading = types.DefaultReading()
	}

	now := s.Now()
	return types.CityRiskProfile{
		City:        city.Name,
		Coordinates: types.Coordinates{Lat: city.Lat, Lon: city.Lon},
		Conditions:  reading,
		Risk:        Score(reading, now.Month()),
		Advisory:    Advisory(reading),
		GeneratedAt: now,
	}, nil
}

// CompareCities scores every named city (the default subset when the
// list is empty), skipping unknown names, and ranks the results by
// score descending with registry order breaking ties. City evaluations
// share no state and run concurrently.
func (s *Service) CompareCities(cityNames []string) types.CityComparison {
	if len(cityNames) == 0 {
		cityNames = DefaultComparisonCities()
	}

	profiles := make([]*types.CityRiskProfile, len(cityNames))
	var wg sync.WaitGroup
	for i, name := range cityNames {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			profile, err := s.ScoreCityRisk(name)
			if err != nil {
				log.Printf("Skipping city in comparison: %v", err)
				return
			}
			profiles[i] = &profile
		}(i, name)
	}
	wg.Wait()

	var ranked []types.CityRiskProfile
	for _, p := range profiles {
		if p != nil {
			ranked = append(ranked, *p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Risk.OverallScore != ranked[j].Risk.OverallScore {
			return ranked[i].Risk.OverallScore > ranked[j].Risk.OverallScore
		}
		return registryIndex(ranked[i].City) < registryIndex(ranked[j].City)
	})

	comparison := types.CityComparison{
		CitiesAnalyzed: len(ranked),
		Profiles:       ranked,
		GeneratedAt:    s.Now(),
	}

	if len(ranked) == 0 {
		comparison.Message = "No city data available"
		return comparison
	}

	total := 0.0
	for _, p := range ranked {
		total += p.Risk.OverallScore
	}
	highest, lowest := ranked[0], ranked[len(ranked)-1]
	comparison.Summary = &types.ComparisonSummary{
		HighestRiskCity: types.CityRiskRef{
			Name: highest.City, RiskScore: highest.Risk.OverallScore, RiskLevel: highest.Risk.RiskLevel,
		},
		LowestRiskCity: types.CityRiskRef{
			Name: lowest.City, RiskScore: lowest.Risk.OverallScore, RiskLevel: lowest.Risk.RiskLevel,
		},
		AverageRiskScore: round1(total / float64(len(ranked))),
	}
	return comparison
}
