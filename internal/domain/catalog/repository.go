package catalog

import "context"

// Source yields the static catalog the service is built from.
type Source interface {
	Artists(ctx context.Context) ([]Artist, error)
	Categories(ctx context.Context) ([]Category, error)
}
