// Package sales exposes the seller performance report engine as an HTTP
// module: policy registry, result caching and the report endpoints.
package sales

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/sales-report/internal/events"
	"github.com/noah-isme/sales-report/internal/obs"
	"github.com/noah-isme/sales-report/internal/report"
)

// ErrUnknownPolicy is returned when the requested policy name has no
// registered strategies.
var ErrUnknownPolicy = errors.New("unknown report policy")

// Service computes seller performance reports. Finished reports are cached
// in Redis keyed by a digest of the dataset, so identical snapshots are not
// re-analysed within the TTL.
type Service struct {
	R        *redis.Client
	TTL      time.Duration
	Policies map[string]report.Strategies
	Default  string
	Options  report.Options
	Events   *events.Bus
	Logger   zerolog.Logger
}

// PolicyNames returns the registered policy names in stable order.
func (s *Service) PolicyNames() []string {
	names := make([]string, 0, len(s.Policies))
	for name := range s.Policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Compute runs the analysis for the dataset under the named policy. An empty
// policy selects the default one; topN overrides the configured best-seller
// list cap when positive.
func (s *Service) Compute(ctx context.Context, policy string, topN int, data report.Dataset) ([]report.SellerReport, error) {
	if s == nil || len(s.Policies) == 0 {
		return nil, errors.New("report service not configured")
	}
	name, strategies, err := s.resolve(policy)
	if err != nil {
		return nil, err
	}
	opts := s.Options
	if topN > 0 {
		opts.TopProducts = topN
	}

	key, cacheable := s.cacheKey(name, opts, data)
	if cacheable {
		if cached, ok := s.fromCache(ctx, key); ok {
			observeCache("hit")
			return cached, nil
		}
		observeCache("miss")
	}

	start := time.Now()
	reports, err := report.Analyze(data, strategies, opts)
	if err != nil {
		observeReport(name, "error", time.Since(start))
		s.emit(ctx, events.TopicReportFailed, map[string]any{"policy": name, "error": err.Error()})
		return nil, err
	}
	observeReport(name, "ok", time.Since(start))
	if obs.ReportSellersRanked != nil {
		obs.ReportSellersRanked.Add(float64(len(reports)))
	}
	if cacheable {
		s.store(ctx, key, reports)
	}
	s.emit(ctx, events.TopicReportComputed, map[string]any{
		"policy":  name,
		"sellers": len(reports),
		"records": len(data.PurchaseRecords),
	})
	return reports, nil
}

func (s *Service) resolve(policy string) (string, report.Strategies, error) {
	name := strings.TrimSpace(policy)
	if name == "" {
		name = s.Default
	}
	if name == "" {
		name = "default"
	}
	strategies, ok := s.Policies[name]
	if !ok {
		return "", report.Strategies{}, fmt.Errorf("%w: %s", ErrUnknownPolicy, name)
	}
	return name, strategies, nil
}

func (s *Service) emit(ctx context.Context, topic string, payload any) {
	if s.Events == nil {
		return
	}
	if _, err := s.Events.Emit(ctx, topic, payload); err != nil {
		s.Logger.Warn().Err(err).Str("topic", topic).Msg("emit report event")
	}
}

// cacheKey derives the cache key for the request. Marshalling the dataset is
// deterministic for struct input, so equal snapshots share a digest.
func (s *Service) cacheKey(policy string, opts report.Options, data report.Dataset) (string, bool) {
	if s.R == nil || s.TTL <= 0 {
		return "", false
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", false
	}
	digest := sha256.Sum256(encoded)
	parts := []string{
		"rep", "sellers", policy,
		strconv.Itoa(opts.TopProducts),
		strconv.FormatBool(opts.RequireData),
		hex.EncodeToString(digest[:]),
	}
	return strings.Join(parts, ":"), true
}

func (s *Service) fromCache(ctx context.Context, key string) ([]report.SellerReport, bool) {
	data, err := s.R.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var reports []report.SellerReport
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, false
	}
	return reports, true
}

func (s *Service) store(ctx context.Context, key string, reports []report.SellerReport) {
	data, err := json.Marshal(reports)
	if err != nil {
		return
	}
	_ = s.R.Set(ctx, key, data, s.TTL).Err()
}

func observeReport(policy, result string, elapsed time.Duration) {
	if obs.ReportTotal != nil {
		obs.ReportTotal.WithLabelValues(policy, result).Inc()
	}
	if obs.ReportDuration != nil {
		obs.ReportDuration.WithLabelValues(policy).Observe(obs.DurationMillis(elapsed))
	}
}

func observeCache(result string) {
	if obs.ReportCacheTotal != nil {
		obs.ReportCacheTotal.WithLabelValues(result).Inc()
	}
}
