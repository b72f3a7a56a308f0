package pipeline

import "errors"

// ErrProviderRequired is returned when a pipeline is constructed without an
// AI provider.
var ErrProviderRequired = errors.New("ai provider required")
