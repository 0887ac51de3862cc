package app

import (
	"context"
	"log/slog"

	"vestr-cli/internal/domain"
)

// ExploreState is the render state of the explore grid.
type ExploreState int

const (
	ExploreIdle ExploreState = iota
	ExploreLoading
	ExploreFailed
	ExploreEmpty
	ExploreReady
)

func (s ExploreState) String() string {
	switch s {
	case ExploreLoading:
		return "loading"
	case ExploreFailed:
		return "error"
	case ExploreEmpty:
		return "empty"
	case ExploreReady:
		return "ready"
	default:
		return "idle"
	}
}

// ExploreView fetches the scenario list once per load and decorates it for display.
type ExploreView struct {
	mount
	source   ScenarioLister
	onSelect func(domain.Scenario)

	state     ExploreState
	scenarios []domain.Scenario
	err       error
}

func NewExploreView(source ScenarioLister, onSelect func(domain.Scenario)) *ExploreView {
	return &ExploreView{source: source, onSelect: onSelect}
}

// Load fetches and decorates the scenarios. Calling it again is the retry path.
func (v *ExploreView) Load(ctx context.Context) ExploreState {
	ctx, gen := v.begin(ctx, func() {
		v.state = ExploreLoading
		v.scenarios = nil
		v.err = nil
	})

	scenarios, err := v.source.ListScenarios(ctx)
	if err != nil {
		slog.Error("failed to fetch scenarios", "error", err)
	}

	var state ExploreState
	v.commit(gen, func() {
		switch {
		case err != nil:
			v.state, v.err = ExploreFailed, err
		case len(scenarios) == 0:
			v.state = ExploreEmpty
		default:
			decorated := make([]domain.Scenario, len(scenarios))
			for i, s := range scenarios {
				decorated[i] = domain.Decorate(s)
			}
			v.state, v.scenarios = ExploreReady, decorated
		}
		state = v.state
	})
	if state == ExploreIdle {
		return v.State()
	}
	return state
}

func (v *ExploreView) State() ExploreState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *ExploreView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Scenarios returns a copy of the decorated list.
func (v *ExploreView) Scenarios() []domain.Scenario {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]domain.Scenario(nil), v.scenarios...)
}

// Select hands the i-th decorated scenario to the selection callback.
func (v *ExploreView) Select(i int) (domain.Scenario, error) {
	v.mu.Lock()
	if v.state != ExploreReady || i < 0 || i >= len(v.scenarios) {
		v.mu.Unlock()
		return domain.Scenario{}, domain.ErrScenarioNotFound
	}
	chosen := v.scenarios[i]
	v.mu.Unlock()

	if v.onSelect != nil {
		v.onSelect(chosen)
	}
	return chosen, nil
}

// SelectID selects a scenario by its backend id.
func (v *ExploreView) SelectID(id int) (domain.Scenario, error) {
	for i, s := range v.Scenarios() {
		if s.ID == id {
			return v.Select(i)
		}
	}
	return domain.Scenario{}, domain.ErrScenarioNotFound
}
