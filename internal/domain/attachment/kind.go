package attachment

import "fmt"

// Kind discriminates how a board's attachment column is shaped. It is a
// closed set: the reconciler switches over it and never compares raw strings.
type Kind int

const (
	KindSingle Kind = iota
	KindGallery
	KindArchive
	KindYouTube
)

func ParseKind(s string) (Kind, error) {
	switch s {
	case "single":
		return KindSingle, nil
	case "gallery":
		return KindGallery, nil
	case "archive":
		return KindArchive, nil
	case "youtube":
		return KindYouTube, nil
	default:
		return 0, fmt.Errorf("unknown board kind %q", s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGallery:
		return "gallery"
	case KindArchive:
		return "archive"
	case KindYouTube:
		return "youtube"
	default:
		return "unknown"
	}
}
