package metadata

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Data item tokens are deterministic logical names for the physical bytes of
// one snapshot or delta. They double as relative storage paths under the
// tenant prefix.

// DataItemForDelta derives the token for one delta of one snapshot of a
// table. The random suffix keeps retried writes from colliding with an
// aborted artifact that a backend failed to clean up.
func DataItemForDelta(objectId string, snapIndex, deltaIndex int32) string {
	return fmt.Sprintf("data/table/%s/snap-%d/delta-%d-x%s",
		objectId, snapIndex, deltaIndex, randomSuffix())
}

// DataItemForFile derives the token for one version of a file object.
func DataItemForFile(objectId string, objectVersion int32) string {
	return fmt.Sprintf("file/%s/version-%d", objectId, objectVersion)
}

func randomSuffix() string {
	var buf [3]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
