package session

import "context"

// Store is the opaque blob store the manager persists into. Load reports
// absence with ok=false rather than an error.
type Store interface {
	Load(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Save(ctx context.Context, key string, blob []byte) error
}

const rosterKey = "roster"

func sessionKey(channelID string) string {
	return "session:" + channelID
}
