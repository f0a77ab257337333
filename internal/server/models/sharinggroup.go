package models

import "time"

// SharingGroup is a namespace of files shared by a set of devices. It owns
// exactly one master version and one lock slot and is only ever soft-deleted.
type SharingGroup struct {
	ID        string
	Name      string
	Deleted   bool
	CreatedAt time.Time
}

// MasterVersion is the monotonic counter gating every mutation of a
// sharing group's file set.
type MasterVersion struct {
	SharingGroupID string
	Value          int64
}

// Lock is the advisory commit lock row of a sharing group.
type Lock struct {
	SharingGroupID string
	DeviceID       string
	AcquiredAt     time.Time
}
