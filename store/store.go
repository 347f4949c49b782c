// Package store persists bookings and discovery history under the
// user's config directory as plain JSON files.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"ticketwise-cli/model"
)

const (
	appDirName       = "ticketwise-cli"
	maxRecentQueries = 8
)

type queryHistory struct {
	Queries []string `json:"queries"`
}

// LoadBookings returns every confirmed booking, oldest first. A missing
// file means no bookings yet.
func LoadBookings() ([]model.Booking, error) {
	path, err := configPath("bookings.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, errors.New("invalid bookings format")
	}
	return bookings, nil
}

// AppendBooking adds one booking to the file, creating it if needed.
func AppendBooking(b model.Booking) error {
	bookings, err := LoadBookings()
	if err != nil {
		return err
	}
	return saveBookings(append(bookings, b))
}

// Bookings adapts the file store to the checkout persistence port.
type Bookings struct{}

func (Bookings) Append(b model.Booking) error {
	return AppendBooking(b)
}

// LoadRecentQueries returns past discovery queries, newest first.
func LoadRecentQueries() ([]string, error) {
	path, err := configPath("queries.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history queryHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid query history format")
	}
	return history.Queries, nil
}

// RememberQuery moves a query to the front of the history, dropping
// case-insensitive duplicates and keeping the list bounded.
func RememberQuery(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	history, _ := LoadRecentQueries()
	next := []string{query}
	for _, existing := range history {
		if strings.EqualFold(existing, query) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentQueries {
			break
		}
	}
	return saveRecentQueries(next)
}

func saveBookings(bookings []model.Booking) error {
	path, err := configPath("bookings.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func saveRecentQueries(queries []string) error {
	path, err := configPath("queries.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(queryHistory{Queries: queries}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, name), nil
}
