// Package client provides the client record model, its storage, and the
// registry service that creates, edits, searches and removes records.
package client

import (
	"time"
)

// Client is one tracked customer.
type Client struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	HouseAddress    string    `json:"house_address"`
	RegisterAddress string    `json:"register_address"`
	FirstContact    Date      `json:"first_contact"`
	NextFollow      Date      `json:"next_follow"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Input holds the user-editable fields submitted by a form or API call.
// NextFollow is the raw date text; blank means "default" on create and
// "keep current" on update.
type Input struct {
	Name            string `json:"name"`
	HouseAddress    string `json:"house_address"`
	RegisterAddress string `json:"register_address"`
	NextFollow      string `json:"next_follow"`
	Notes           string `json:"notes"`
}

// ListQuery selects which clients List returns.
type ListQuery struct {
	Search    string
	TodayOnly bool
}

// ListResult is the list view: matching clients plus the follow-up
// count for today over the whole table.
type ListResult struct {
	Clients    []*Client `json:"clients"`
	Search     string    `json:"search"`
	TodayOnly  bool      `json:"today_only"`
	Today      Date      `json:"today"`
	TodayCount int       `json:"today_count"`
}

// scanClient scans a client from a database row.
func scanClient(row interface{ Scan(...interface{}) error }) (*Client, error) {
	var c Client
	err := row.Scan(
		&c.ID, &c.Name, &c.HouseAddress, &c.RegisterAddress,
		&c.FirstContact, &c.NextFollow, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
