package badger

import (
	"fmt"

	"github.com/maddiravi/academia-analyzer-agent/core"
)

// Key prefix for cached embedding vectors
const vectorKeyPrefix = "embvec"

// makeVectorKey generates a key for a cached vector by content ID.
func makeVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", vectorKeyPrefix, id))
}
