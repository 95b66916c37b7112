package entity

import "strings"

// Movie is a catalog record as returned by the external movie catalog.
// It is immutable once fetched and lives only for the duration of a
// browsing session; nothing is persisted locally.
type Movie struct {
	ID       string
	Title    string
	Poster   string
	Plot     string
	Language string
	Rating   string
}

// PlaceholderMovie is rendered while a catalog lookup has not resolved.
// A failed lookup is treated as "still loading", never as a terminal error.
func PlaceholderMovie(id string) *Movie {
	return &Movie{
		ID:       id,
		Title:    "Unknown Title",
		Language: "Unknown Language",
		Poster:   "/images/placeholder.jpg",
	}
}

// Languages splits the catalog's comma-separated language field.
func (m *Movie) Languages() []string {
	if m.Language == "" {
		return nil
	}
	parts := strings.Split(m.Language, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
