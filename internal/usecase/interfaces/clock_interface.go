package interfaces

import "time"

// IClock is the source of current time for the session lifecycle.
type IClock interface {
	Now() time.Time
}
