package maps

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const elementStatusOK = "OK"

// Oracle ranks delivery zones by driving distance from a pickup address
// using the Google Distance Matrix API. The assignment flow degrades
// gracefully when distances are unavailable, so lookups report partial or
// empty results instead of errors.
type Oracle struct {
	client        distanceMatrixAPI
	retrier       retrier
	countrySuffix string
	log           oracleLogger
}

func NewOracle(apiKey, countrySuffix string, log oracleLogger) (*Oracle, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return New(client, countrySuffix, log), nil
}

func New(client distanceMatrixAPI, countrySuffix string, log oracleLogger) *Oracle {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	}

	return &Oracle{
		client:        client,
		retrier:       backoff_adapter.New(retryConfig),
		countrySuffix: countrySuffix,
		log:           log,
	}
}

// RankZonesByDistance returns the zones ordered by driving distance from
// origin, closest first. Zones the API could not resolve are dropped; a
// failed request returns an empty slice.
func (o *Oracle) RankZonesByDistance(ctx context.Context, origin string, zones []entities.Zone) []entities.ZoneDistance {
	if len(zones) == 0 {
		return nil
	}

	destinations := make([]string, 0, len(zones))
	for _, zone := range zones {
		destinations = append(destinations, o.normalize(zone.Name))
	}

	req := &maps.DistanceMatrixRequest{
		Origins:      []string{o.normalize(origin)},
		Destinations: destinations,
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := o.executeWithMetrics(ctx, "DistanceMatrix", req)
	if err != nil {
		o.log.Warn("distance matrix lookup failed",
			logger.NewField("origin", origin),
			logger.NewField("error", err),
		)
		return nil
	}

	if len(resp.Rows) == 0 {
		return nil
	}

	elements := resp.Rows[0].Elements
	ranked := make([]entities.ZoneDistance, 0, len(zones))
	for i, zone := range zones {
		if i >= len(elements) {
			break
		}
		element := elements[i]
		if element.Status != elementStatusOK {
			o.log.Warn("zone distance unresolved",
				logger.NewField("zone", zone.Name),
				logger.NewField("status", element.Status),
			)
			continue
		}
		ranked = append(ranked, entities.ZoneDistance{
			Zone:           zone,
			DistanceMeters: element.Distance.Meters,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceMeters != ranked[j].DistanceMeters {
			return ranked[i].DistanceMeters < ranked[j].DistanceMeters
		}
		return ranked[i].Zone.Name < ranked[j].Zone.Name
	})

	return ranked
}

func (o *Oracle) executeWithMetrics(ctx context.Context, method string, req *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error) {
	var (
		resp    *maps.DistanceMatrixResponse
		attempt uint64
	)

	start := time.Now()

	err := o.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		var err error
		resp, err = o.client.DistanceMatrix(ctx, req)
		return err
	})

	status := "OK"
	if err != nil {
		status = "ERROR"
	}
	OracleRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		OracleRetriesTotal.WithLabelValues(method, status).Inc()
	}

	return resp, err
}

// normalize anchors bare addresses and zone names to the country so the
// geocoder does not wander to same-named places abroad.
func (o *Oracle) normalize(address string) string {
	if o.countrySuffix == "" {
		return address
	}

	country := strings.ToLower(strings.TrimLeft(o.countrySuffix, ", "))
	if strings.Contains(strings.ToLower(address), country) {
		return address
	}

	return address + o.countrySuffix
}
