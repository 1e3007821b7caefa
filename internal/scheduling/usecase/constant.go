package usecase

import "time"

// Bounded timeouts for the two network suspension points. The busy fetch can
// fail fast (the caller just sees no slots); the event insert gets longer
// because it fans out invitations and a conference request.
const (
	busyFetchTimeout   = 15 * time.Second
	eventCreateTimeout = 30 * time.Second
)
