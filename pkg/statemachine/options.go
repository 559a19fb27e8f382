package statemachine

import "fmt"

type Option func(*Machine) error

// New builds a machine resting in initial.
func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, ErrNilInitialState
	}
	m := &Machine{
		current: initial,
		routes:  make(map[edge][]route),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is like New but panics on a bad definition.
func MustNew(initial State, opts ...Option) *Machine {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Errorf("statemachine.MustNew: %w", err))
	}
	return m
}

func WithTransition(from, to State, event Event, guards ...Guard) Option {
	return func(m *Machine) error {
		return m.add(from, to, event, compact(guards))
	}
}

// WithTransitionFrom registers the same event and target for several source states.
func WithTransitionFrom(from []State, to State, event Event, guards ...Guard) Option {
	return func(m *Machine) error {
		for i, f := range from {
			if err := m.add(f, to, event, compact(guards)); err != nil {
				return fmt.Errorf("source %d: %w", i, err)
			}
		}
		return nil
	}
}

// WithHook registers an observer for every completed transition.
func WithHook(h Hook) Option {
	return func(m *Machine) error {
		if h != nil {
			m.hooks = append(m.hooks, h)
		}
		return nil
	}
}

func compact(guards []Guard) []Guard {
	out := guards[:0:0]
	for _, g := range guards {
		if g != nil {
			out = append(out, g)
		}
	}
	return out
}
