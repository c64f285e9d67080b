package credential

import "errors"

// ErrInvalidInput indicates a malformed wallet address or missing credential
// fields. It is raised synchronously, before any network call.
var ErrInvalidInput = errors.New("invalid issuance input")

// ErrNotIssuable indicates a revocation was requested for a record that is
// not in the issued state or has no token id on record.
var ErrNotIssuable = errors.New("credential is not in a revocable state")
