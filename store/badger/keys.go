package badger

import "encoding/binary"

// Key prefixes for persisted store data
const (
	passageRecordPrefix = "pasrec"
	manifestKey         = "manifest"
)

// makePassageRecordKey generates a key for a passage record by store row.
// The row index is written in BigEndian order so iteration over the prefix
// yields records in their original row order, which retrieval tie-breaking
// depends on.
func makePassageRecordKey(row int) []byte {
	prefix := passageRecordPrefix + ":"
	buf := make([]byte, len(prefix)+4)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint32(buf[offset:], uint32(row))
	return buf
}

// makeManifestKey generates the key for the store manifest.
func makeManifestKey() []byte {
	return []byte(manifestKey)
}
