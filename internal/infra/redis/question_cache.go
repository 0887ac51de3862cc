package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"vestr-cli/internal/domain"
)

// QuestionLoader fetches quiz questions from the backend API.
type QuestionLoader interface {
	Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error)
}

// QuestionCache keeps each scenario's question list in Redis and falls back to
// the loader on a miss. Lists are stored as JSON under vestr:questions:{scenarioID}.
// Empty lists and load errors are never cached.
type QuestionCache struct {
	client *redis.Client
	loader QuestionLoader
	ttl    time.Duration
	sf     singleflight.Group

	rndMu sync.Mutex
	rnd   *rand.Rand
}

func NewQuestionCache(client *redis.Client, loader QuestionLoader, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuestionCache) Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error) {
	key := c.key(scenarioID)
	if questions, ok := c.cached(ctx, key); ok {
		return questions, nil
	}

	// The shared load outlives any single caller; each caller still stops
	// waiting when its own ctx ends.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(key, func() (interface{}, error) {
		// Another caller may have filled it meanwhile.
		if questions, ok := c.cached(loadCtx, key); ok {
			return questions, nil
		}

		questions, err := c.loader.Questions(loadCtx, scenarioID)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return questions, nil
		}

		raw, err := json.Marshal(questions)
		if err == nil {
			err = c.client.Set(loadCtx, key, raw, c.ttlWithJitter()).Err()
		}
		if err != nil {
			slog.Warn("failed to cache questions", "scenario", scenarioID, "error", err)
		}
		return questions, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]domain.QuizQuestion), nil
	}
}

func (c *QuestionCache) cached(ctx context.Context, key string) ([]domain.QuizQuestion, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var questions []domain.QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil || len(questions) == 0 {
		return nil, false
	}
	return questions, true
}

func (c *QuestionCache) key(scenarioID int) string {
	return "vestr:questions:" + strconv.Itoa(scenarioID)
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	c.rndMu.Lock()
	defer c.rndMu.Unlock()
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
