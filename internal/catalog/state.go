// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the film catalog state, its actions, the root
// reducer and the selectors the UI reads through.
package catalog

import (
	"time"

	"github.com/MKhiriev/go-film-keeper/models"
)

// List names a film list shown by the client.
type List string

const (
	ListRecent  List = "recent"
	ListTop     List = "top"
	ListAll     List = "all"
	ListStarred List = "starred"
)

// Lists in display order.
var Lists = []List{ListRecent, ListTop, ListAll, ListStarred}

// ListOf returns the list showing films of movieType.
func ListOf(movieType models.MovieType) (List, bool) {
	switch movieType {
	case models.MovieTypeRecent:
		return ListRecent, true
	case models.MovieTypeTop:
		return ListTop, true
	default:
		return "", false
	}
}

// State is the root state of the client. Values are treated as immutable:
// the reducer copies every map it changes.
type State struct {
	// Films holds every loaded film by movie id.
	Films map[int64]models.Film `json:"films"`

	// Lists holds the movie ids of each list in load order.
	Lists map[List][]int64 `json:"lists"`

	Loading map[List]bool             `json:"loading"`
	Syncing map[models.MovieType]bool `json:"syncing"`

	Starred map[int64]bool `json:"starred"`
	Viewed  map[int64]bool `json:"viewed"`

	// Selected is the movie id of the film in the detail view, zero if none.
	Selected int64 `json:"selected"`

	// Err is the last failure reported by a background task.
	Err string `json:"err,omitempty"`

	LastSync map[models.MovieType]time.Time `json:"last_sync"`
}

// InitialState returns an empty catalog.
func InitialState() State {
	return State{
		Films:    map[int64]models.Film{},
		Lists:    map[List][]int64{},
		Loading:  map[List]bool{},
		Syncing:  map[models.MovieType]bool{},
		Starred:  map[int64]bool{},
		Viewed:   map[int64]bool{},
		LastSync: map[models.MovieType]time.Time{},
	}
}
