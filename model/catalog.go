package model

// Movie is a film available for booking.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	PosterURL   string   `json:"posterUrl"`
	BackdropURL string   `json:"backdropUrl"`
	Rating      float64  `json:"rating"`
	Genre       []string `json:"genre"`
	Duration    string   `json:"duration"`
	ReleaseDate string   `json:"releaseDate"`
	Description string   `json:"description"`
	Cast        []string `json:"cast"`
}

// Event is a live event (concert, sports or theater) available for booking.
type Event struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	ImageURL    string  `json:"imageUrl"`
	Date        string  `json:"date"`
	Venue       string  `json:"venue"`
	PriceMin    float64 `json:"priceMin"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
}

const (
	EventConcert = "concert"
	EventSports  = "sports"
	EventTheater = "theater"
)
