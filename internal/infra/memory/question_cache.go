package memory

import (
	"context"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"vestr-cli/internal/domain"
)

// QuestionLoader fetches quiz questions from the backend API.
type QuestionLoader interface {
	Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error)
}

// QuestionCache keeps question lists for the life of the process so replaying
// a scenario does not refetch it.
type QuestionCache struct {
	loader QuestionLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group

	mu    sync.RWMutex
	rnd   *rand.Rand
	cache map[int]cachedQuestions
}

type cachedQuestions struct {
	questions []domain.QuizQuestion
	expiresAt time.Time
}

func NewQuestionCache(loader QuestionLoader, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[int]cachedQuestions),
	}
}

func (c *QuestionCache) Questions(ctx context.Context, scenarioID int) ([]domain.QuizQuestion, error) {
	if questions, ok := c.lookup(scenarioID); ok {
		return questions, nil
	}

	// The shared load outlives any single caller; each caller still stops
	// waiting when its own ctx ends.
	loadCtx := context.WithoutCancel(ctx)
	ch := c.sf.DoChan(strconv.Itoa(scenarioID), func() (interface{}, error) {
		if questions, ok := c.lookup(scenarioID); ok {
			return questions, nil
		}

		questions, err := c.loader.Questions(loadCtx, scenarioID)
		if err != nil {
			return nil, err
		}
		if len(questions) == 0 {
			return questions, nil
		}

		c.mu.Lock()
		c.cache[scenarioID] = cachedQuestions{
			questions: questions,
			expiresAt: c.clock().Add(c.ttlWithJitterLocked()),
		}
		c.mu.Unlock()
		return questions, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return clone(res.Val.([]domain.QuizQuestion)), nil
	}
}

func (c *QuestionCache) lookup(scenarioID int) ([]domain.QuizQuestion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.cache[scenarioID]
	if !ok || !entry.expiresAt.After(c.clock()) {
		return nil, false
	}
	return clone(entry.questions), true
}

// clone copies the list and each option slice so callers cannot mutate the cache.
func clone(questions []domain.QuizQuestion) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(questions))
	for i, q := range questions {
		q.Options = append([]domain.QuizOption(nil), q.Options...)
		out[i] = q
	}
	return out
}

func (c *QuestionCache) ttlWithJitterLocked() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
