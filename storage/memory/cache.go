package memory

import (
	"context"
	"sync"

	"github.com/huandu/go-clone"
	"go.opentelemetry.io/otel"

	"github.com/mathieupost/chainbind"
	"github.com/mathieupost/chainbind/abi"
	"github.com/mathieupost/chainbind/log"
)

var _ chainbind.Cache = (*Cache)(nil)

// Cache keeps classified contracts in memory. Contracts are cloned on the way
// in and out, so callers can modify what they get. Diagnostic errors are
// shared so that sentinels still match with errors.Is.
type Cache struct {
	digestContractMapping sync.Map
}

func NewCache() *Cache {
	return &Cache{}
}

func (s *Cache) Get(ctx context.Context, digest string) (*chainbind.Classified, bool) {
	_, span := otel.Tracer("").Start(ctx, "memory.Cache.Get")
	defer span.End()

	v, ok := s.digestContractMapping.Load(digest)
	if !ok {
		return nil, false
	}
	return copyClassified(v.(*chainbind.Classified)), true
}

func (s *Cache) Put(ctx context.Context, digest string, classified *chainbind.Classified) {
	_, span := otel.Tracer("").Start(ctx, "memory.Cache.Put")
	defer span.End()

	log.Debug().Str("digest", digest).Msg("Cache.Put")
	s.digestContractMapping.Store(digest, copyClassified(classified))
}

func copyClassified(classified *chainbind.Classified) *chainbind.Classified {
	copied := &chainbind.Classified{}
	if classified.Contract != nil {
		copied.Contract = clone.Clone(classified.Contract).(*abi.Contract)
	}
	if classified.Diagnostics != nil {
		copied.Diagnostics = append([]abi.Diagnostic{}, classified.Diagnostics...)
	}
	return copied
}
