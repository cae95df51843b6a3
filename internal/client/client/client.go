package client

import (
	"context"
	"net/url"
)

// Item is one inventory record as rendered by the server: a flat JSON object
// with the server-managed _id, created_at and updated_at keys.
type Item map[string]any

// ID returns the item's _id.
func (i Item) ID() string {
	id, _ := i["_id"].(string)
	return id
}

type Client interface {
	Signup(ctx context.Context, email, password, fullName string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Ping(ctx context.Context) error
	List(ctx context.Context, query url.Values) ([]Item, error)
	Get(ctx context.Context, id string) (Item, error)
	Add(ctx context.Context, fields map[string]any) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
