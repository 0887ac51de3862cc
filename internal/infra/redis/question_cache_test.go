package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"

	"vestr-cli/internal/domain"
)

type countingLoader struct {
	mu        sync.Mutex
	calls     int
	questions []domain.QuizQuestion
	err       error
}

func (l *countingLoader) Questions(context.Context, int) ([]domain.QuizQuestion, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.questions, l.err
}

func TestQuestionCacheCachesInRedis(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &countingLoader{questions: []domain.QuizQuestion{
		{ID: 1, Scenario: 7, QuestionText: "Q1", XPReward: 10, Options: []domain.QuizOption{{ID: 2, OptionText: "B", IsCorrect: true}}},
	}}
	cache := NewQuestionCache(newClient(mr), loader, time.Minute)

	if _, err := cache.Questions(context.Background(), 7); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if !mr.Exists("vestr:questions:7") {
		t.Fatalf("expected questions key to be set")
	}
	if ttl := mr.TTL("vestr:questions:7"); ttl < time.Minute || ttl > time.Minute+6*time.Second {
		t.Fatalf("expected ttl within jitter range, got %v", ttl)
	}

	// Second call should hit cache, loader not incremented.
	got, err := cache.Questions(context.Background(), 7)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls=%d", loader.calls)
	}
	if len(got) != 1 || !got[0].Options[0].IsCorrect || got[0].XPReward != 10 {
		t.Fatalf("unexpected cached questions %+v", got)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := cache.Questions(context.Background(), 7); err != nil {
		t.Fatalf("questions: %v", err)
	}
	if loader.calls != 2 {
		t.Fatalf("expected reload after expiry, loader calls=%d", loader.calls)
	}
}

func TestQuestionCacheDoesNotStoreFailures(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	boom := errors.New("boom")
	cache := NewQuestionCache(newClient(mr), &countingLoader{err: boom}, time.Minute)
	if _, err := cache.Questions(context.Background(), 7); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}

	empty := NewQuestionCache(newClient(mr), &countingLoader{}, time.Minute)
	if got, err := empty.Questions(context.Background(), 8); err != nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %+v err=%v", got, err)
	}
	if mr.Exists("vestr:questions:7") || mr.Exists("vestr:questions:8") {
		t.Fatalf("failures and empty lists must not be cached")
	}
}

type blockingLoader struct {
	started  chan struct{}
	release  chan struct{}
	response []domain.QuizQuestion
}

func (l *blockingLoader) Questions(ctx context.Context, _ int) ([]domain.QuizQuestion, error) {
	l.started <- struct{}{}
	<-l.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return l.response, nil
}

func TestQuestionCacheSharedLoadSurvivesCallerCancel(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	loader := &blockingLoader{
		started:  make(chan struct{}, 2),
		release:  make(chan struct{}),
		response: []domain.QuizQuestion{{ID: 1, Scenario: 7, QuestionText: "Q1"}},
	}
	cache := NewQuestionCache(newClient(mr), loader, time.Minute)

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := cache.Questions(first, 7)
		firstErr <- err
	}()
	<-loader.started

	secondErr := make(chan error, 1)
	go func() {
		_, err := cache.Questions(context.Background(), 7)
		secondErr <- err
	}()

	cancel()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(loader.release)
	if err := <-secondErr; err != nil {
		t.Fatalf("second caller failed: %v", err)
	}
	if !mr.Exists("vestr:questions:7") {
		t.Fatalf("expected the shared load to fill the cache")
	}
}
