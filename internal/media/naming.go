package media

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

var extSafeRe = regexp.MustCompile(`[^a-z0-9.]`)

type (
	// NormalizedName is the repaired display name of an uploaded file plus
	// the storage key it will live under.
	NormalizedName struct {
		DisplayName string
		StorageKey  string
	}

	// Namer builds collision-safe storage keys for the files of one request.
	// Wall-clock millis are not unique across a concurrent batch, so every
	// key also carries a per-request sequence number.
	Namer struct {
		seq atomic.Uint64
		now func() time.Time
	}
)

func NewNamer() *Namer {
	return &Namer{now: time.Now}
}

// Normalize repairs the client-declared filename and derives the storage key
// `<escaped-base>_<unixMillis>_<seq><ext>`. A name that cannot produce a
// usable base falls back to an opaque uuid; a bad name never fails an upload.
func (n *Namer) Normalize(originalName string) NormalizedName {
	display := RepairFilename(originalName)

	ext := strings.ToLower(filepath.Ext(display))
	ext = extSafeRe.ReplaceAllString(ext, "")
	base := strings.TrimSuffix(display, filepath.Ext(display))
	base = strings.TrimSpace(base)

	escaped := url.QueryEscape(base)
	if escaped == "" {
		escaped = strings.ReplaceAll(uuid.New().String(), "-", "")
		display = escaped + ext
	}

	key := escaped +
		"_" + strconv.FormatInt(n.now().UnixMilli(), 10) +
		"_" + strconv.FormatUint(n.seq.Add(1), 10) +
		ext

	return NormalizedName{
		DisplayName: display,
		StorageKey:  key,
	}
}

// RepairFilename undoes the latin-1 mis-decode the multipart layer applies to
// non-ASCII filenames. The garbled form holds one rune per original byte, so
// re-encoding to latin-1 recovers the raw bytes; when those bytes are valid
// UTF-8 the re-decoded string is the real name. Names that do not fit that
// pattern are returned unchanged.
func RepairFilename(name string) string {
	raw, err := charmap.ISO8859_1.NewEncoder().String(name)
	if err != nil {
		// runes above 0xFF: the name was proper UTF-8 all along
		return name
	}
	if !utf8.ValidString(raw) {
		return name
	}
	return raw
}

// DisplayBaseFromKey reverses the escaping applied by Normalize for the base
// segment of a storage key.
func DisplayBaseFromKey(key string) (string, error) {
	base := strings.TrimSuffix(key, filepath.Ext(key))
	if i := strings.LastIndex(base, "_"); i >= 0 {
		base = base[:i]
	}
	if i := strings.LastIndex(base, "_"); i >= 0 {
		base = base[:i]
	}
	return url.QueryUnescape(base)
}
