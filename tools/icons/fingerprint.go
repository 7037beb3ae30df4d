// License: GPLv3 Copyright: 2026, The lsicons Authors

package icons

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/zeebo/xxh3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var _ = fmt.Print

func hash_table(h *xxh3.Hasher, tag string, m map[string]rune) {
	keys := maps.Keys(m)
	slices.Sort(keys)
	var buf [4]byte
	h.WriteString(tag)
	binary.LittleEndian.PutUint32(buf[:], uint32(len(keys)))
	h.Write(buf[:])
	for _, k := range keys {
		h.WriteString(k)
		h.Write([]byte{0})
		binary.LittleEndian.PutUint32(buf[:], uint32(m[k]))
		h.Write(buf[:])
	}
}

func fingerprint(names, exts map[string]rune) uint64 {
	h := xxh3.New()
	hash_table(h, "names", names)
	hash_table(h, "extensions", exts)
	return h.Sum64()
}

// TableFingerprint is a digest of every entry in NameMap and ExtensionMap.
// It changes whenever an entry is added, removed or assigned a different
// icon, so consumers that pin exact glyphs can detect a new table version.
var TableFingerprint = sync.OnceValue(func() uint64 {
	return fingerprint(NameMap(), ExtensionMap())
})

func TableFingerprintString() string {
	return fmt.Sprintf("%016x", TableFingerprint())
}
