package attachment

import (
	"encoding/json"
	"strings"
)

type (
	// Archive references one stored object plus the metadata needed to
	// serve it through a re-signed download URL under its original name.
	Archive struct {
		Path string `json:"path"`
		Name string `json:"name"`
		Size int64  `json:"size"`
		Type string `json:"type"`
	}

	// Value is the parsed attachment column of a record. Exactly the
	// field matching Kind is meaningful; Serialize enforces that.
	Value struct {
		Kind    Kind
		Single  string
		Gallery []string
		Archive *Archive
	}
)

// Parse interprets a stored column value according to its kind. Any value
// that does not parse per the declared shape is treated as no previous
// attachments: legacy rows written before a kind's format changed must not
// break the write path.
func Parse(kind Kind, raw string) Value {
	v := Value{Kind: kind}
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return v
	}

	switch kind {
	case KindSingle:
		v.Single = raw
	case KindGallery:
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			v.Gallery = urls
			break
		}
		// oldest rows joined URLs with commas
		for _, u := range strings.Split(raw, ",") {
			if u = strings.TrimSpace(u); u != "" {
				v.Gallery = append(v.Gallery, u)
			}
		}
	case KindArchive:
		var a Archive
		if err := json.Unmarshal([]byte(raw), &a); err == nil && a.Path != "" {
			v.Archive = &a
		}
	case KindYouTube:
		// a board switched to youtube may still carry the attachment its
		// previous kind wrote; recover whatever shape is stored so the
		// objects can be released
		var a Archive
		if err := json.Unmarshal([]byte(raw), &a); err == nil && a.Path != "" {
			v.Archive = &a
			break
		}
		var urls []string
		if err := json.Unmarshal([]byte(raw), &urls); err == nil {
			v.Gallery = urls
			break
		}
		if strings.Contains(raw, ",") {
			for _, u := range strings.Split(raw, ",") {
				if u = strings.TrimSpace(u); u != "" {
					v.Gallery = append(v.Gallery, u)
				}
			}
			break
		}
		v.Single = raw
	}

	return v
}

// Serialize emits the canonical column form for the value's kind. The output
// shape depends only on Kind, so a corrupt mixed shape cannot be produced.
func (v Value) Serialize() string {
	switch v.Kind {
	case KindSingle:
		return v.Single
	case KindGallery:
		if len(v.Gallery) == 0 {
			return ""
		}
		b, err := json.Marshal(v.Gallery)
		if err != nil {
			return ""
		}
		return string(b)
	case KindArchive:
		if v.Archive == nil {
			return ""
		}
		b, err := json.Marshal(v.Archive)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}

// IsEmpty reports whether the value references no stored object.
func (v Value) IsEmpty() bool {
	return v.Single == "" && len(v.Gallery) == 0 && v.Archive == nil
}

// StorageKeys lists every object key the value references, for cleanup when
// the owning record goes away. All fields are harvested regardless of Kind
// because a youtube parse may have recovered another kind's leftovers.
func (v Value) StorageKeys() []string {
	var keys []string
	if v.Single != "" {
		keys = append(keys, KeyFromURL(v.Single))
	}
	for _, u := range v.Gallery {
		keys = append(keys, KeyFromURL(u))
	}
	if v.Archive != nil {
		keys = append(keys, KeyFromURL(v.Archive.Path))
	}
	return keys
}
