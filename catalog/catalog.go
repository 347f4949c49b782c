// Package catalog holds the static seed of movies and events the
// storefront sells tickets for. It stands in for a real catalog service;
// everything downstream consumes it through Items, Find and Entries so
// the source can be swapped without touching the matcher or the UI.
package catalog

import "ticketwise-cli/model"

var Movies = []model.Movie{
	{
		ID:          "m1",
		Title:       "Cyberpunk Horizons",
		PosterURL:   "https://picsum.photos/300/450?random=1",
		BackdropURL: "https://picsum.photos/1200/600?random=1",
		Rating:      4.8,
		Genre:       []string{"Sci-Fi", "Action"},
		Duration:    "2h 15m",
		ReleaseDate: "2024-10-15",
		Description: "In a neon-soaked future, a rogue hacker discovers a conspiracy that threatens to rewrite human consciousness.",
		Cast:        []string{"Keanu Reeves", "Ana de Armas"},
	},
	{
		ID:          "m2",
		Title:       "The Last Symphony",
		PosterURL:   "https://picsum.photos/300/450?random=2",
		BackdropURL: "https://picsum.photos/1200/600?random=2",
		Rating:      4.5,
		Genre:       []string{"Drama", "Music"},
		Duration:    "1h 50m",
		ReleaseDate: "2024-11-02",
		Description: "A retiring conductor attempts to compose his masterpiece while battling memory loss.",
		Cast:        []string{"Anthony Hopkins", "Cate Blanchett"},
	},
	{
		ID:          "m3",
		Title:       "Galactic Racers",
		PosterURL:   "https://picsum.photos/300/450?random=3",
		BackdropURL: "https://picsum.photos/1200/600?random=3",
		Rating:      4.2,
		Genre:       []string{"Action", "Adventure"},
		Duration:    "2h 05m",
		ReleaseDate: "2024-09-28",
		Description: "The galaxy's fastest pilots compete in a high-stakes race across three star systems.",
		Cast:        []string{"Chris Pratt", "Zoe Saldana"},
	},
	{
		ID:          "m4",
		Title:       "Midnight Laughs",
		PosterURL:   "https://picsum.photos/300/450?random=4",
		BackdropURL: "https://picsum.photos/1200/600?random=4",
		Rating:      4.0,
		Genre:       []string{"Comedy"},
		Duration:    "1h 30m",
		ReleaseDate: "2024-10-05",
		Description: "A group of friends gets locked in a comedy club overnight.",
		Cast:        []string{"Kevin Hart", "Tiffany Haddish"},
	},
}

var Events = []model.Event{
	{
		ID:          "e1",
		Title:       "Neon Music Festival",
		ImageURL:    "https://picsum.photos/600/400?random=5",
		Date:        "Oct 20, 2024",
		Venue:       "City Arena",
		PriceMin:    89,
		Type:        model.EventConcert,
		Description: "The biggest electronic music festival of the year featuring top DJs.",
	},
	{
		ID:          "e2",
		Title:       "Championship Finals",
		ImageURL:    "https://picsum.photos/600/400?random=6",
		Date:        "Nov 12, 2024",
		Venue:       "Grand Stadium",
		PriceMin:    120,
		Type:        model.EventSports,
		Description: "Witness history in the making as the top two teams clash for the trophy.",
	},
	{
		ID:          "e3",
		Title:       "Romeo & Juliet: Reimagined",
		ImageURL:    "https://picsum.photos/600/400?random=7",
		Date:        "Oct 25, 2024",
		Venue:       "Royal Theater",
		PriceMin:    45,
		Type:        model.EventTheater,
		Description: "A modern twist on the classic Shakespearean tragedy.",
	},
}

// Item is a unified view over the two catalog variants. Exactly one of
// Movie or Event is non-nil.
type Item struct {
	Movie *model.Movie
	Event *model.Event
}

func (i Item) IsMovie() bool {
	return i.Movie != nil
}

func (i Item) ID() string {
	if i.Movie != nil {
		return i.Movie.ID
	}
	if i.Event != nil {
		return i.Event.ID
	}
	return ""
}

func (i Item) Title() string {
	if i.Movie != nil {
		return i.Movie.Title
	}
	if i.Event != nil {
		return i.Event.Title
	}
	return ""
}

func (i Item) Description() string {
	if i.Movie != nil {
		return i.Movie.Description
	}
	if i.Event != nil {
		return i.Event.Description
	}
	return ""
}

// Image is the primary image reference: a movie's poster or an event's image.
func (i Item) Image() string {
	if i.Movie != nil {
		return i.Movie.PosterURL
	}
	if i.Event != nil {
		return i.Event.ImageURL
	}
	return ""
}

// Category is "movie" for movies and the event type otherwise.
func (i Item) Category() string {
	if i.Movie != nil {
		return "movie"
	}
	if i.Event != nil {
		return i.Event.Type
	}
	return ""
}

// Items returns the combined catalog, movies first, in seed order.
func Items() []Item {
	items := make([]Item, 0, len(Movies)+len(Events))
	for idx := range Movies {
		items = append(items, Item{Movie: &Movies[idx]})
	}
	for idx := range Events {
		items = append(items, Item{Event: &Events[idx]})
	}
	return items
}

// Find resolves an id against the combined catalog.
func Find(id string) (Item, bool) {
	for _, item := range Items() {
		if item.ID() == id {
			return item, true
		}
	}
	return Item{}, false
}

// Entry is the reduced projection of a catalog item sent to the
// recommendation service.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Entries projects the given items for the recommendation payload.
func Entries(items []Item) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entryType := "movie"
		if item.Event != nil {
			entryType = item.Event.Type
		}
		entries = append(entries, Entry{
			ID:          item.ID(),
			Title:       item.Title(),
			Category:    item.Category(),
			Description: item.Description(),
			Type:        entryType,
		})
	}
	return entries
}
