package lookup

import (
	"context"
	"errors"
	"fmt"

	"go-lexicon/internal/definition"

	"github.com/redis/go-redis/v9"
)

const (
	keyTotal  = "lookups:total"
	keyFailed = "lookups:failed"
	keyWords  = "lookups:words"

	DefaultTopWords = 10
)

type WordCount struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
}

type Summary struct {
	Total    int64       `json:"total"`
	Failed   int64       `json:"failed"`
	TopWords []WordCount `json:"topWords"`
}

// Stats keeps lookup counters in redis.
type Stats struct {
	rdb *redis.Client
}

func NewStats(rdb *redis.Client) *Stats {
	return &Stats{rdb: rdb}
}

func (s *Stats) Observe(ctx context.Context, o definition.Outcome) error {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, keyTotal)
		if !o.Succeeded() {
			p.Incr(ctx, keyFailed)
		}
		p.ZIncrBy(ctx, keyWords, 1, o.Word)
		return nil
	})
	if err != nil {
		return fmt.Errorf("update lookup stats: %w", err)
	}
	return nil
}

// Summary reads the counters and the top most requested words.
func (s *Stats) Summary(ctx context.Context, top int) (Summary, error) {
	if top <= 0 {
		top = DefaultTopWords
	}
	total, err := s.counter(ctx, keyTotal)
	if err != nil {
		return Summary{}, err
	}
	failed, err := s.counter(ctx, keyFailed)
	if err != nil {
		return Summary{}, err
	}
	zs, err := s.rdb.ZRevRangeWithScores(ctx, keyWords, 0, int64(top-1)).Result()
	if err != nil {
		return Summary{}, fmt.Errorf("read top words: %w", err)
	}
	words := make([]WordCount, 0, len(zs))
	for _, z := range zs {
		member, _ := z.Member.(string)
		words = append(words, WordCount{Word: member, Count: int64(z.Score)})
	}
	return Summary{Total: total, Failed: failed, TopWords: words}, nil
}

func (s *Stats) counter(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}
	return n, nil
}
