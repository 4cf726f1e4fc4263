package attachment

import "strings"

type (
	// Ref is the terminal result of one successful upload.
	Ref struct {
		PublicURL   string
		StorageKey  string
		DisplayName string
		Size        int64
		MediaType   string
	}

	// Request carries everything the reconciler needs to compute the next
	// canonical column value for a record.
	Request struct {
		Kind       Kind
		Previous   string
		Deletions  []string
		Uploads    []Ref
		YouTubeURL string
	}

	// Result is the next column value plus the storage keys that are no
	// longer referenced and should be removed best-effort.
	Result struct {
		Value        Value
		Column       string
		RemoveKeys   []string
		YouTubeURL   string
		ThumbnailURL string
	}
)

// Reconcile merges the previously stored attachments, the explicit deletions
// and the freshly uploaded refs into the canonical value for the kind. The
// full value is always re-derived; fragments of the old column are never
// patched in place, which is what keeps mixed shapes impossible.
func Reconcile(req Request) Result {
	prev := Parse(req.Kind, req.Previous)

	res := Result{Value: Value{Kind: req.Kind}}

	deleted := make(map[string]struct{}, len(req.Deletions))
	for _, d := range req.Deletions {
		deleted[d] = struct{}{}
		res.RemoveKeys = append(res.RemoveKeys, KeyFromURL(d))
	}

	switch req.Kind {
	case KindSingle:
		res.Value.Single = prev.Single
		if _, ok := deleted[prev.Single]; ok {
			res.Value.Single = ""
		}
		// single keeps only the last uploaded URL
		for _, ref := range req.Uploads {
			res.Value.Single = ref.PublicURL
		}

	case KindGallery:
		for _, u := range prev.Gallery {
			if _, ok := deleted[u]; ok {
				continue
			}
			res.Value.Gallery = append(res.Value.Gallery, u)
		}
		for _, ref := range req.Uploads {
			res.Value.Gallery = append(res.Value.Gallery, ref.PublicURL)
		}

	case KindArchive:
		res.Value.Archive = prev.Archive
		if prev.Archive != nil {
			if _, ok := deleted[prev.Archive.Path]; ok {
				res.Value.Archive = nil
			}
		}
		// a new archive upload always fully replaces the previous object
		for _, ref := range req.Uploads {
			if res.Value.Archive != nil {
				res.RemoveKeys = append(res.RemoveKeys, KeyFromURL(res.Value.Archive.Path))
			}
			res.Value.Archive = &Archive{
				Path: ref.StorageKey,
				Name: ref.DisplayName,
				Size: ref.Size,
				Type: ref.MediaType,
			}
		}

	case KindYouTube:
		// an external video URL supersedes any stored attachment
		res.RemoveKeys = append(res.RemoveKeys, prev.StorageKeys()...)
		res.YouTubeURL = req.YouTubeURL
		res.ThumbnailURL = YouTubeThumbnailURL(YouTubeVideoID(req.YouTubeURL))
	}

	res.Column = res.Value.Serialize()

	return res
}

// KeyFromURL derives the storage key from a public URL by taking the final
// path segment, with any query string dropped. Bare keys pass through.
func KeyFromURL(u string) string {
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}
	if i := strings.LastIndexByte(u, '/'); i >= 0 {
		u = u[i+1:]
	}
	return u
}
