package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vmachado/escritorio-api/internal/models"
)

type cepLookup interface {
	Lookup(ctx context.Context, cep string) (*models.Endereco, error)
}

type ibgeLookup interface {
	Estados(ctx context.Context) ([]models.Estado, error)
	Municipios(ctx context.Context, uf string) ([]models.Municipio, error)
}

type cacheObserver interface {
	RecordCacheOperation(hit bool, duration time.Duration)
	ObserveCacheWrite(duration time.Duration)
}

// RefDataService serves postal-code and region lookups through a
// read-through Redis cache. Reference data changes rarely, so entries live
// for a long TTL and upstream calls happen only on a miss. Cache failures
// degrade to direct upstream calls instead of failing the request.
type RefDataService struct {
	viacep  cepLookup
	ibge    ibgeLookup
	redis   *redis.Client
	ttl     time.Duration
	metrics cacheObserver
	logger  *zap.Logger
}

// NewRefDataService constructs a RefDataService instance. A nil redis
// client disables caching entirely.
func NewRefDataService(viacep cepLookup, ibge ibgeLookup, redisClient *redis.Client, ttl time.Duration, metrics cacheObserver, logger *zap.Logger) *RefDataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RefDataService{viacep: viacep, ibge: ibge, redis: redisClient, ttl: ttl, metrics: metrics, logger: logger}
}

// LookupCEP resolves a postal code, serving repeated lookups from cache.
func (s *RefDataService) LookupCEP(ctx context.Context, cep string) (*models.Endereco, error) {
	key := "refdata:cep:" + normalizeKey(cep)
	var endereco models.Endereco
	if s.cacheGet(ctx, key, &endereco) {
		return &endereco, nil
	}

	fresh, err := s.viacep.Lookup(ctx, cep)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, fresh)
	return fresh, nil
}

// Estados returns the state catalog, cached under a single key.
func (s *RefDataService) Estados(ctx context.Context) ([]models.Estado, error) {
	const key = "refdata:ibge:estados"
	var estados []models.Estado
	if s.cacheGet(ctx, key, &estados) {
		return estados, nil
	}

	fresh, err := s.ibge.Estados(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, fresh)
	return fresh, nil
}

// Municipios returns the municipalities of one state, cached per UF.
func (s *RefDataService) Municipios(ctx context.Context, uf string) ([]models.Municipio, error) {
	key := "refdata:ibge:municipios:" + normalizeKey(uf)
	var municipios []models.Municipio
	if s.cacheGet(ctx, key, &municipios) {
		return municipios, nil
	}

	fresh, err := s.ibge.Municipios(ctx, uf)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, fresh)
	return fresh, nil
}

func (s *RefDataService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.redis == nil {
		return false
	}
	start := time.Now()
	payload, err := s.redis.Get(ctx, key).Bytes()
	hit := err == nil
	if s.metrics != nil {
		s.metrics.RecordCacheOperation(hit, time.Since(start))
	}
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		s.logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *RefDataService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("cache payload encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	start := time.Now()
	if err := s.redis.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if s.metrics != nil {
		s.metrics.ObserveCacheWrite(time.Since(start))
	}
}

func normalizeKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
