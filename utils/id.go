package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns "<prefix>-<unixmilli>-<random>". The timestamp plus a
// random suffix gives practical uniqueness without a shared counter. Ids are
// opaque: callers must not assume they sort or run sequentially.
func GenerateID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}
