package external

import (
	"fmt"
	"sort"

	"weatherblock.app/internal/config"
	"weatherblock.app/internal/ports"
	"weatherblock.app/pkg/errors"
)

type cacheConstructor func(cfg *config.CacheConfig) (ports.CacheProvider, error)

// CacheProviderFactory builds the weather cache store named by CACHE_TYPE
type CacheProviderFactory struct {
	constructors map[config.CacheType]cacheConstructor
}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{
		constructors: map[config.CacheType]cacheConstructor{
			config.CacheTypeMemory: func(*config.CacheConfig) (ports.CacheProvider, error) {
				return NewMemoryCacheProvider(), nil
			},
			config.CacheTypeRedis: func(cfg *config.CacheConfig) (ports.CacheProvider, error) {
				provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
				if err != nil {
					return nil, err
				}
				return provider, nil
			},
		},
	}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	construct, ok := f.constructors[cfg.Type]
	if !ok {
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type %q (supported: %v)", cfg.Type.String(), f.SupportedTypes()), nil)
	}
	return construct(cfg)
}

// SupportedTypes lists the cache types the factory can build, sorted
func (f *CacheProviderFactory) SupportedTypes() []string {
	types := make([]string, 0, len(f.constructors))
	for t := range f.constructors {
		types = append(types, t.String())
	}
	sort.Strings(types)
	return types
}
