package model

// Movie describes one entry of the movie catalog shown to customers.
// Catalog data comes from an external provider; none of it is validated
// locally beyond decoding.
//
// Fields:
//  ID          – provider identifier, used as the booking foreign key.
//  Title       – display title.
//  Poster      – poster image URL.
//  Rating      – rating on a five point scale.
//  Duration    – human readable running time (e.g. "2h 20min").
//  Genre       – comma separated genre list.
//  Showtimes   – showtimes offered for this movie.
//  Description – synopsis text.
//  ReleaseDate – optional release date (YYYY-MM-DD).
//  Director    – optional director name.
//  Cast        – optional list of leading cast members.
//  Language    – optional audio language.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Rating      float64  `json:"rating"`
	Duration    string   `json:"duration"`
	Genre       string   `json:"genre"`
	Showtimes   []string `json:"showtimes"`
	Description string   `json:"description"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Director    string   `json:"director,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	Language    string   `json:"language,omitempty"`
}
