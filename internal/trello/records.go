package trello

import (
	"time"

	"github.com/thenoetrevino/termllo/internal/models"
)

// Raw JSON shapes returned by the API. Only the fields we use are decoded.

type boardRecord struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Starred          bool       `json:"starred"`
	DateLastView     *time.Time `json:"dateLastView"`
	DateLastActivity *time.Time `json:"dateLastActivity"`
}

type listRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
}

type cardRecord struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Desc   string  `json:"desc"`
	IDList string  `json:"idList"`
	Pos    float64 `json:"pos"`
}

func (r boardRecord) toModel() models.Board {
	b := models.Board{ID: r.ID, Name: r.Name, Starred: r.Starred}
	if r.DateLastView != nil {
		b.LastViewed = *r.DateLastView
	}
	if r.DateLastActivity != nil {
		b.LastModified = *r.DateLastActivity
	}
	return b
}

func (r listRecord) toModel() models.List {
	return models.List{ID: r.ID, Name: r.Name}
}

func (r cardRecord) toModel() models.Card {
	return models.Card{
		ID:     r.ID,
		Name:   r.Name,
		Desc:   r.Desc,
		ListID: r.IDList,
		Pos:    r.Pos,
	}
}
