package client

import "errors"

// ErrMissingDependencies is returned by [NewApp] when the config or the
// services are nil.
var ErrMissingDependencies = errors.New("client app requires config and services")
