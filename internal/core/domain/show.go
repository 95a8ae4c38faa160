package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type ShowType string

const (
	ShowTypeMovie  ShowType = "MOVIE"
	ShowTypeTVShow ShowType = "TV_SHOW"
)

// ShowTypes lists every show type in declaration order.
func ShowTypes() []ShowType {
	return []ShowType{ShowTypeMovie, ShowTypeTVShow}
}

func ShowTypeNames() []string {
	types := ShowTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

func ParseShowType(s string) (ShowType, error) {
	for _, t := range ShowTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown show type %q", ErrInvalidInput, s)
}

const DateLayout = "2006-01-02"

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("date must use %s layout: %w", DateLayout, err)
	}
	*d = parsed
	return nil
}

// ShowInput is the client supplied show. Every field is nullable so that
// required-field rules can tell "absent" apart from a zero value.
type ShowInput struct {
	ID               *int64  `json:"id,omitempty"`
	ShowType         *string `json:"showType"`
	Title            *string `json:"title"`
	Director         *string `json:"director"`
	CastMembers      *string `json:"castMembers"`
	Country          *string `json:"country"`
	DateAdded        *Date   `json:"dateAdded"`
	ReleaseYear      *int    `json:"releaseYear"`
	Rating           *int    `json:"rating"`
	DurationInMinute *int    `json:"durationInMinute"`
	ListedIn         *string `json:"listedIn"`
	Description      *string `json:"description"`
}

// UnmarshalJSON decodes like the default decoder, except that an empty
// dateAdded string counts as absent so the required-field rule reports it.
func (in *ShowInput) UnmarshalJSON(b []byte) error {
	type fields ShowInput
	aux := struct {
		*fields
		DateAdded *string `json:"dateAdded"`
	}{fields: (*fields)(in)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	in.DateAdded = nil
	if aux.DateAdded == nil || *aux.DateAdded == "" {
		return nil
	}
	d, err := ParseDate(*aux.DateAdded)
	if err != nil {
		return fmt.Errorf("date must use %s layout: %w", DateLayout, err)
	}
	in.DateAdded = &d
	return nil
}

// ToShow maps a validated input onto a Show. It fails when a required field
// is missing, which only happens if validation was skipped.
func (in ShowInput) ToShow(id int64) (Show, error) {
	if in.ShowType == nil || in.Title == nil || in.Country == nil || in.DateAdded == nil || in.ReleaseYear == nil {
		return Show{}, fmt.Errorf("%w: show is missing required fields", ErrInvalidInput)
	}
	showType, err := ParseShowType(*in.ShowType)
	if err != nil {
		return Show{}, err
	}
	return Show{
		ID:               id,
		ShowType:         showType,
		Title:            *in.Title,
		Director:         in.Director,
		CastMembers:      in.CastMembers,
		Country:          *in.Country,
		DateAdded:        *in.DateAdded,
		ReleaseYear:      *in.ReleaseYear,
		Rating:           in.Rating,
		DurationInMinute: in.DurationInMinute,
		ListedIn:         in.ListedIn,
		Description:      in.Description,
	}, nil
}

type Show struct {
	ID               int64    `json:"id"`
	ShowType         ShowType `json:"showType"`
	Title            string   `json:"title"`
	Director         *string  `json:"director"`
	CastMembers      *string  `json:"castMembers"`
	Country          string   `json:"country"`
	DateAdded        Date     `json:"dateAdded"`
	ReleaseYear      int      `json:"releaseYear"`
	Rating           *int     `json:"rating"`
	DurationInMinute *int     `json:"durationInMinute"`
	ListedIn         *string  `json:"listedIn"`
	Description      *string  `json:"description"`
}
