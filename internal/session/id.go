package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// NewID returns a session identifier. In test mode the identifiers are deterministic
// and keep the UUID v4 shape: 00000001-0000-4000-8000-000000000001, 00000002-..., etc.
func NewID(testMode bool) string {
	if !testMode {
		return uuid.New().String()
	}

	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter++
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

// ResetIDs restarts the deterministic identifier sequence.
func ResetIDs() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}
