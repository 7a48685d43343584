package kibana

import (
	"crypto/sha1"
	"encoding/hex"
)

const (
	// SharedIndex is the system index holding non-user-specific saved objects.
	SharedIndex = ".kibana"
	// SharedIndexUser is the sentinel username that selects SharedIndex directly.
	SharedIndexUser = "$kibana"
)

// IndexForUser maps a username to its Kibana index name. The sentinel user
// resolves to the shared system index; every other username resolves to a
// per-user index named by the hex SHA-1 of the username, which can never equal
// the shared index literal.
func IndexForUser(username string) string {
	if username == SharedIndexUser {
		return SharedIndex
	}
	sum := sha1.Sum([]byte(username))
	return SharedIndex + "." + hex.EncodeToString(sum[:])
}
