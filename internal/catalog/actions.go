package catalog

import (
	"time"

	"github.com/MKhiriev/go-film-keeper/models"
)

// Action types.
const (
	TypeFetchMovies     = "catalog/FETCH_MOVIES"
	TypeMoviesRequested = "catalog/MOVIES_REQUESTED"
	TypeMoviesLoaded    = "catalog/MOVIES_LOADED"
	TypeMoviesFailed    = "catalog/MOVIES_FAILED"
	TypeFetchMovie      = "catalog/FETCH_MOVIE"
	TypeMovieLoaded     = "catalog/MOVIE_LOADED"
	TypeMovieFailed     = "catalog/MOVIE_FAILED"
	TypeSelectMovie     = "catalog/SELECT_MOVIE"
	TypeToggleStar      = "catalog/TOGGLE_STAR"
	TypeMarkViewed      = "catalog/MARK_VIEWED"
	TypeSyncMovies      = "catalog/SYNC_MOVIES"
	TypeSyncStarted     = "catalog/SYNC_STARTED"
	TypeSyncCompleted   = "catalog/SYNC_COMPLETED"
	TypeSyncFailed      = "catalog/SYNC_FAILED"
)

// FetchMovies asks the background tasks to load a list from the local cache.
type FetchMovies struct {
	List List `json:"list"`
}

func (FetchMovies) ActionType() string { return TypeFetchMovies }
func (FetchMovies) Intent()            {}

// MoviesRequested marks a list as loading.
type MoviesRequested struct {
	List List `json:"list"`
}

func (MoviesRequested) ActionType() string { return TypeMoviesRequested }

// MoviesLoaded replaces the content of a list.
type MoviesLoaded struct {
	List  List          `json:"list"`
	Films []models.Film `json:"films"`
}

func (MoviesLoaded) ActionType() string { return TypeMoviesLoaded }

// MoviesFailed records a failed list load.
type MoviesFailed struct {
	List   List   `json:"list"`
	Reason string `json:"reason"`
}

func (MoviesFailed) ActionType() string { return TypeMoviesFailed }

// FetchMovie asks the background tasks to load one film with its details.
type FetchMovie struct {
	MovieID int64 `json:"movie_id"`
}

func (FetchMovie) ActionType() string { return TypeFetchMovie }
func (FetchMovie) Intent()            {}

// MovieLoaded stores a single film.
type MovieLoaded struct {
	Film models.Film `json:"film"`
}

func (MovieLoaded) ActionType() string { return TypeMovieLoaded }

// MovieFailed records a failed film load.
type MovieFailed struct {
	MovieID int64  `json:"movie_id"`
	Reason  string `json:"reason"`
}

func (MovieFailed) ActionType() string { return TypeMovieFailed }

// SelectMovie sets the film shown in the detail view. Zero clears it.
type SelectMovie struct {
	MovieID int64 `json:"movie_id"`
}

func (SelectMovie) ActionType() string { return TypeSelectMovie }

// ToggleStar stars or unstars a film.
type ToggleStar struct {
	MovieID int64 `json:"movie_id"`
}

func (ToggleStar) ActionType() string { return TypeToggleStar }

// MarkViewed records that a film's details were opened.
type MarkViewed struct {
	MovieID int64 `json:"movie_id"`
}

func (MarkViewed) ActionType() string { return TypeMarkViewed }

// SyncMovies asks the background tasks to refresh a listing from the remote
// catalog.
type SyncMovies struct {
	Type models.MovieType `json:"type"`
}

func (SyncMovies) ActionType() string { return TypeSyncMovies }
func (SyncMovies) Intent()            {}

// SyncStarted marks a listing as syncing.
type SyncStarted struct {
	Type models.MovieType `json:"type"`
}

func (SyncStarted) ActionType() string { return TypeSyncStarted }

// SyncCompleted records a finished listing sync.
type SyncCompleted struct {
	Type models.MovieType `json:"type"`
	At   time.Time        `json:"at"`
}

func (SyncCompleted) ActionType() string { return TypeSyncCompleted }

// SyncFailed records a failed listing sync.
type SyncFailed struct {
	Type   models.MovieType `json:"type"`
	Reason string           `json:"reason"`
}

func (SyncFailed) ActionType() string { return TypeSyncFailed }
