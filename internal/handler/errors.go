package handler

import "errors"

// errNoHandlersAreCreated means the server config has neither an HTTP nor a
// gRPC address, so there is nothing to serve.
var errNoHandlersAreCreated = errors.New("no transport address configured")
