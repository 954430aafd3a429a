package override

import (
	"fmt"

	"sitesettings/internal/settings"
)

// Domain names one of the two settings domains.
type Domain int

const (
	DomainFlat Domain = iota
	DomainSectioned
)

func (d Domain) String() string {
	switch d {
	case DomainFlat:
		return "flat"
	case DomainSectioned:
		return "sectioned"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// State describes where a domain's active instance came from.
type State int

const (
	StateUninitialized State = iota
	StateDefault
	StateOverridden
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateDefault:
		return "default"
	case StateOverridden:
		return "overridden"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Holder stores the active instance of each domain. The zero value holds
// nothing; reads fail with ErrNotConfigured until something is installed.
type Holder struct {
	flat      settings.Flat
	sectioned settings.Sectioned
	states    [2]State
}

// NewHolder returns an empty holder.
func NewHolder() *Holder {
	return &Holder{}
}

// SetFlat replaces the active flat settings. Passing nil unconfigures the
// domain.
func (h *Holder) SetFlat(instance settings.Flat) {
	h.installFlat(instance, StateOverridden)
}

// SetSectioned replaces the active sectioned settings. Passing nil
// unconfigures the domain.
func (h *Holder) SetSectioned(instance settings.Sectioned) {
	h.installSectioned(instance, StateOverridden)
}

// Flat returns the active flat settings.
func (h *Holder) Flat() (settings.Flat, error) {
	if h.flat == nil {
		return nil, &NotConfiguredError{Domain: DomainFlat}
	}
	return h.flat, nil
}

// Sectioned returns the active sectioned settings.
func (h *Holder) Sectioned() (settings.Sectioned, error) {
	if h.sectioned == nil {
		return nil, &NotConfiguredError{Domain: DomainSectioned}
	}
	return h.sectioned, nil
}

// State reports where the active instance of d came from.
func (h *Holder) State(d Domain) State {
	if d < DomainFlat || d > DomainSectioned {
		return StateUninitialized
	}
	return h.states[d]
}

func (h *Holder) installFlat(instance settings.Flat, state State) {
	h.flat = instance
	h.states[DomainFlat] = stateFor(instance == nil, state)
}

func (h *Holder) installSectioned(instance settings.Sectioned, state State) {
	h.sectioned = instance
	h.states[DomainSectioned] = stateFor(instance == nil, state)
}

func stateFor(cleared bool, state State) State {
	if cleared {
		return StateUninitialized
	}
	return state
}
