package services

import "errors"

// ErrComputationFailed is the single signal the engine hands to the transport
// layer when a table is malformed or arithmetic produced a non-finite value.
var ErrComputationFailed = errors.New("computation failed")
