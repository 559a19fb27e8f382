package statemachine

import (
	"context"
	"sync"
)

// State is anything with a stable name. Two states are equal when their names are.
type State interface {
	Name() string
}

// Event triggers a transition. Events are matched by name.
type Event interface {
	Name() string
}

// Guard vetoes a transition when it returns false.
type Guard func(ctx context.Context, from State, event Event) bool

// Hook observes a transition after the state has changed.
type Hook func(ctx context.Context, from, to State, event Event)

type StringState string

func (s StringState) Name() string { return string(s) }

type StringEvent string

func (e StringEvent) Name() string { return string(e) }

type edge struct {
	from  string
	event string
}

type route struct {
	to     State
	guards []Guard
}

// Machine is a finite state machine safe for concurrent use.
// Several routes may share an edge; the first one whose guards pass wins,
// so registration order is priority order.
type Machine struct {
	mu      sync.RWMutex
	current State
	routes  map[edge][]route
	hooks   []Hook
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Machine) Is(state State) bool {
	if state == nil {
		return false
	}
	return m.Current().Name() == state.Name()
}

// Fire moves the machine along the first allowed route for event.
// Hooks run after the lock is released, so they may call back into the machine.
func (m *Machine) Fire(ctx context.Context, event Event) error {
	if event == nil {
		return ErrInvalidEvent
	}

	m.mu.Lock()
	from := m.current
	routes := m.routes[edge{from.Name(), event.Name()}]
	r, err := pick(ctx, from, event, routes)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.current = r.to
	hooks := m.hooks
	m.mu.Unlock()

	for _, h := range hooks {
		h(ctx, from, r.to, event)
	}
	return nil
}

func (m *Machine) add(from, to State, event Event, guards []Guard) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}
	k := edge{from.Name(), event.Name()}
	m.routes[k] = append(m.routes[k], route{to: to, guards: guards})
	return nil
}

func pick(ctx context.Context, from State, event Event, routes []route) (route, error) {
	if len(routes) == 0 {
		return route{}, &RefusedError{State: from.Name(), Event: event.Name()}
	}
next:
	for _, r := range routes {
		for _, g := range r.guards {
			if !g(ctx, from, event) {
				continue next
			}
		}
		return r, nil
	}
	return route{}, &RefusedError{State: from.Name(), Event: event.Name(), Guarded: true}
}
