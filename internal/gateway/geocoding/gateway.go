package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "geocoder"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 3 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var (
	// ErrAddressNotFound провайдер не нашел ни одного кандидата по адресу.
	ErrAddressNotFound = errors.New("address not found")
	// ErrUnavailable сетевые ошибки, таймауты и 5xx после всех ретраев.
	ErrUnavailable = errors.New("geocoding unavailable")
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// Gateway клиент внешнего геокодера (nominatim-совместимый JSON API).
// Вызывается только при создании доставки и обновлении локации курьера.
type Gateway struct {
	client  httpDoer
	baseURL string
	apiKey  string
	retrier retrier
}

func New(client httpDoer, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		retrier: backoff_adapter.New(retryConfig),
	}
}

type geocodeResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode превращает адрес в координаты. Пустой ответ провайдера это
// ErrAddressNotFound, все транспортные проблемы схлопываются в
// ErrUnavailable, чтобы создание доставки не зависало и не зависело от
// деталей провайдера.
func (g *Gateway) Geocode(ctx context.Context, address string) (entities.GeoPoint, error) {
	var results []geocodeResult

	err := g.executeWithMetrics(ctx, "Geocode", func(ctx context.Context) error {
		return g.search(ctx, address, &results)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return entities.GeoPoint{}, fmt.Errorf("gateway geocoding: %q: %w", address, ErrUnavailable)
		}
		return entities.GeoPoint{}, fmt.Errorf("gateway geocoding: %q: %w", address, err)
	}

	if len(results) == 0 {
		return entities.GeoPoint{}, fmt.Errorf("gateway geocoding: %q: %w", address, ErrAddressNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entities.GeoPoint{}, fmt.Errorf("gateway geocoding, parse latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entities.GeoPoint{}, fmt.Errorf("gateway geocoding, parse longitude: %w", err)
	}

	return entities.GeoPoint{
		Longitude: lon,
		Latitude:  lat,
		Address:   address,
	}, nil
}

func (g *Gateway) search(ctx context.Context, address string, results *[]geocodeResult) error {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	if g.apiKey != "" {
		query.Set("key", g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: provider status %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("unexpected provider status %d", resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(results)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := getOutcome(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}

func getOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
