package interfaces

import "context"

// ISnapshotStore abstracts the durable key/value store used to save and load
// cart and session snapshots across restarts.
//
// Get returns found=false for a missing key; a corrupted value is the
// caller's problem to detect (parse failures must degrade to defaults, never
// crash). The store is assumed single-writer.
type ISnapshotStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
