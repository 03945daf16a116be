// Package catalog fetches the movie list shown to customers.  The data
// comes from the TMDB HTTP API when an API key is configured; on any
// provider failure, or when no key is set, a fixed local list is served
// instead.  Catalog errors therefore never reach the booking flow.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sheshnag/movie-booking/internal/model"
)

// Client talks to the external movie catalog.  A zero API key puts the
// client in local mode, where only the fallback list is served.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New returns a catalog Client.  baseURL should point at the TMDB v3
// API root; timeout bounds every outbound request.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// tmdbMovie mirrors the subset of a TMDB result entry this service
// consumes.  Only fields needed for transformation are declared.
type tmdbMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Runtime     int     `json:"runtime"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	OrigLang    string  `json:"original_language"`
	Genres      []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

type tmdbPage struct {
	Results []tmdbMovie `json:"results"`
}

// toMovie converts a TMDB entry into the catalog model, applying the
// same transformations the storefront always used: ratings are mapped
// from the ten point scale to five points and every movie gets the
// fixed showtime grid.
func toMovie(m tmdbMovie) model.Movie {
	duration := ""
	if m.Runtime > 0 {
		duration = fmt.Sprintf("%dh %dmin", m.Runtime/60, m.Runtime%60)
	}
	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	desc := m.Overview
	if desc == "" {
		desc = "Experience the magic of cinema with this latest release."
	}
	lang := "Hindi"
	if m.OrigLang != "" && m.OrigLang != "hi" {
		lang = "English"
	}
	return model.Movie{
		ID:          fmt.Sprintf("%d", m.ID),
		Title:       m.Title,
		Poster:      "https://image.tmdb.org/t/p/w500" + m.PosterPath,
		Rating:      float64(int(m.VoteAverage/2*10+0.5)) / 10,
		Duration:    duration,
		Genre:       strings.Join(genres, ", "),
		Showtimes:   defaultShowtimes,
		Description: desc,
		ReleaseDate: m.ReleaseDate,
		Language:    lang,
	}
}

// getPage performs one GET against the provider and decodes a result
// page.  Non-200 responses are errors.
func (c *Client) getPage(ctx context.Context, path string, query url.Values) (*tmdbPage, error) {
	query.Set("api_key", c.apiKey)
	u := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog: provider returned status %d", resp.StatusCode)
	}
	var page tmdbPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Movies returns the catalog list.  Local mode and provider failures
// both fall back to the fixed list; this method never fails.
func (c *Client) Movies(ctx context.Context) []model.Movie {
	if c.apiKey == "" {
		return fallbackMovies
	}
	q := url.Values{}
	q.Set("with_origin_country", "IN")
	q.Set("sort_by", "popularity.desc")
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("page", "1")
	page, err := c.getPage(ctx, "/discover/movie", q)
	if err != nil {
		log.Printf("catalog: fetch failed, serving fallback list: %v", err)
		return fallbackMovies
	}
	return c.transform(page.Results, 8)
}

// Search returns movies whose titles match the query.  In local mode
// and on provider failure the fallback list is filtered instead.
func (c *Client) Search(ctx context.Context, query string) []model.Movie {
	if c.apiKey == "" {
		return filterByTitle(fallbackMovies, query)
	}
	q := url.Values{}
	q.Set("query", query)
	q.Set("language", "en-US")
	q.Set("page", "1")
	q.Set("include_adult", "false")
	page, err := c.getPage(ctx, "/search/movie", q)
	if err != nil {
		log.Printf("catalog: search failed, filtering fallback list: %v", err)
		return filterByTitle(fallbackMovies, query)
	}
	return c.transform(page.Results, 8)
}

// Upcoming returns movies releasing soon.  The fallback variant keeps
// movies with a release date in the future relative to now.
func (c *Client) Upcoming(ctx context.Context, now time.Time) []model.Movie {
	if c.apiKey == "" {
		return filterUpcoming(fallbackMovies, now)
	}
	q := url.Values{}
	q.Set("language", "en-US")
	q.Set("page", "1")
	q.Set("region", "IN")
	page, err := c.getPage(ctx, "/movie/upcoming", q)
	if err != nil {
		log.Printf("catalog: upcoming fetch failed, filtering fallback list: %v", err)
		return filterUpcoming(fallbackMovies, now)
	}
	return c.transform(page.Results, 6)
}

// MovieByID returns one movie by its catalog identifier, or false when
// neither the provider nor the fallback list knows the id.
func (c *Client) MovieByID(ctx context.Context, id string) (model.Movie, bool) {
	if c.apiKey == "" {
		return findByID(fallbackMovies, id)
	}
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("language", "en-US")
	u := c.baseURL + "/movie/" + url.PathEscape(id) + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return findByID(fallbackMovies, id)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("catalog: movie %s fetch failed, trying fallback list: %v", id, err)
		return findByID(fallbackMovies, id)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("catalog: movie %s fetch returned status %d", id, resp.StatusCode)
		return findByID(fallbackMovies, id)
	}
	var m tmdbMovie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return findByID(fallbackMovies, id)
	}
	return toMovie(m), true
}

func (c *Client) transform(results []tmdbMovie, limit int) []model.Movie {
	if len(results) > limit {
		results = results[:limit]
	}
	movies := make([]model.Movie, 0, len(results))
	for _, m := range results {
		movies = append(movies, toMovie(m))
	}
	return movies
}

func filterByTitle(movies []model.Movie, query string) []model.Movie {
	q := strings.ToLower(query)
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(strings.ToLower(m.Title), q) {
			out = append(out, m)
		}
	}
	return out
}

func filterUpcoming(movies []model.Movie, now time.Time) []model.Movie {
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if m.ReleaseDate == "" {
			continue
		}
		if t, err := time.Parse("2006-01-02", m.ReleaseDate); err == nil && t.After(now) {
			out = append(out, m)
		}
	}
	return out
}

func findByID(movies []model.Movie, id string) (model.Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return model.Movie{}, false
}
