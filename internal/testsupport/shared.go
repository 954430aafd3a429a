package testsupport

import (
	"sync"
	"testing"

	"sitesettings/internal/override"
)

var sharedMu sync.Mutex

// Serialize holds a process-wide lock until the test finishes. Tests that
// read or mutate a shared Overrides must call it (directly or through
// UseShared) so parallel tests do not race on the active instances.
func Serialize(t testing.TB) {
	t.Helper()

	sharedMu.Lock()
	t.Cleanup(sharedMu.Unlock)
}

// UseShared serialises the test against other users of o, resets o to its
// defaults, and resets it again when the test finishes.
func UseShared(t testing.TB, o *override.Overrides) {
	t.Helper()

	Serialize(t)
	if err := o.Reset(); err != nil {
		t.Fatalf("reset settings: %v", err)
	}
	t.Cleanup(func() {
		if err := o.Reset(); err != nil {
			t.Errorf("reset settings on cleanup: %v", err)
		}
	})
}
