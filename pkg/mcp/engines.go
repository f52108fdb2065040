package mcp

import (
	"encoding/binary"
	"log/slog"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/Sumatoshi-tech/tally/pkg/alg/lru"
	"github.com/Sumatoshi-tech/tally/pkg/tally"
)

// DefaultEngineCacheSize is the number of engines kept between tool calls.
const DefaultEngineCacheSize = 64

// enginePool reuses engines across tool calls on the same dataset, so that
// repeated calls are served from the engine's memoized artifacts.
type enginePool struct {
	engines *lru.Cache[uint64, *tally.Engine]
	kind    tally.Kind
	opts    []tally.Option
}

func newEnginePool(size int, kind tally.Kind, logger *slog.Logger, opts ...tally.Option) *enginePool {
	if size <= 0 {
		size = DefaultEngineCacheSize
	}

	onEvict := func(key uint64, engine *tally.Engine) {
		logger.Debug("engine evicted",
			"fingerprint", strconv.FormatUint(key, 16),
			"values", len(engine.Data()),
		)
	}

	return &enginePool{
		engines: lru.New[uint64, *tally.Engine](size, lru.WithOnEvict(onEvict)),
		kind:    kind,
		opts:    opts,
	}
}

// get returns an engine holding exactly values.
func (p *enginePool) get(values []int) (*tally.Engine, error) {
	key := fingerprint(values)

	if engine, ok := p.engines.Get(key); ok && slices.Equal(engine.Data(), values) {
		return engine, nil
	}

	engine, err := tally.NewKind(p.kind, values, p.opts...)
	if err != nil {
		return nil, err
	}

	p.engines.Put(key, engine)

	return engine, nil
}

func (p *enginePool) stats() lru.Stats {
	return p.engines.Stats()
}

// fingerprint hashes the values in order.
func fingerprint(values []int) uint64 {
	digest := xxhash.New()

	var buf [8]byte

	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}
