package manager

import "github.com/MKhiriev/go-db-warden/models"

// StateChange describes one observable state/version transition of a
// Manager. A notification is raised exactly once per distinct transition;
// re-deriving an unchanged state raises nothing.
type StateChange struct {
	From        models.DbState
	To          models.DbState
	FromVersion int
	ToVersion   int
}

// OnStateChange registers a listener invoked synchronously for every
// state/version change, in registration order. Listeners must not call back
// into mutating Manager operations.
func (m *Manager) OnStateChange(fn func(StateChange)) {
	m.listeners = append(m.listeners, fn)
}

// setStateAndVersion is the single funnel for all state/version mutation.
func (m *Manager) setStateAndVersion(state models.DbState, version int) {
	if state == m.state && version == m.version {
		return
	}

	change := StateChange{
		From:        m.state,
		To:          state,
		FromVersion: m.version,
		ToVersion:   version,
	}
	m.state = state
	m.version = version

	m.log.Debug().
		Str("from", change.From.String()).
		Str("to", change.To.String()).
		Int("from_version", change.FromVersion).
		Int("to_version", change.ToVersion).
		Msg("database state changed")

	for _, fn := range m.listeners {
		fn(change)
	}
}
