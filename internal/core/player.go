package core

import "context"

// Source reports what a player is currently doing.
//
// Query never fails: any problem talking to the player is reported as an
// empty track in StateStopped.
type Source interface {
	Query(ctx context.Context) (Track, PlaybackState)
}

// Notifier announces a track to the user.
type Notifier interface {
	Notify(ctx context.Context, track Track) (uint32, error)
}
