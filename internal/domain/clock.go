package domain

import "github.com/jonboulle/clockwork"

// clock stamps Ranking.GeneratedAt.
var clock = clockwork.NewRealClock()

// SetClock replaces the source of ranking timestamps; a fake clock pins
// GeneratedAt for a run. nil restores wall-clock time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
