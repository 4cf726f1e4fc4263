package settings

import "context"

// Values is the whole site_settings table as a key -> raw value map. Values
// may be JSON or plain strings; interpretation is the caller's concern.
type Values map[string]string

type Repository interface {
	FetchAll(ctx context.Context) (Values, error)
	// UpdateValues writes only the keys that already exist, all in one
	// transaction.
	UpdateValues(ctx context.Context, vals Values) error
}
