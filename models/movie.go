package models

import "strconv"

// MovieList is the response of the remote listing endpoints.
type MovieList struct {
	Count    int     `json:"count"`
	Start    int     `json:"start"`
	Total    int     `json:"total"`
	Title    string  `json:"title"`
	Subjects []Movie `json:"subjects"`
}

// Movie is one entry of a remote listing.
type Movie struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"original_title"`
	Year          string   `json:"year"`
	Rating        Rating   `json:"rating"`
	Genres        []string `json:"genres"`
	Directors     []Person `json:"directors"`
	Casts         []Person `json:"casts"`
	Images        Images   `json:"images"`
	Alt           string   `json:"alt"`
}

// MovieSubject is the detail response of a single movie.
type MovieSubject struct {
	Movie
	Summary   string   `json:"summary"`
	Countries []string `json:"countries"`
}

type Rating struct {
	Average float64 `json:"average"`
	Max     int     `json:"max"`
}

type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Images struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}

// MovieID parses the remote identifier. Malformed identifiers yield zero.
func (m Movie) MovieID() int64 {
	id, err := strconv.ParseInt(m.ID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// YearNumber parses the release year. Malformed years yield zero.
func (m Movie) YearNumber() int {
	year, err := strconv.Atoi(m.Year)
	if err != nil {
		return 0
	}
	return year
}
