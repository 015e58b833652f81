package bgg

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL    = "https://boardgamegeek.com/xmlapi2"
	defaultTimeout    = 10 * time.Second
	defaultMaxResults = 5
)

var ErrQueryRequired = errors.New("query is required")

// Client talks to the BoardGameGeek XML API v2.
type Client struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration, maxResults int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search runs the two-step lookup the API requires: a name search for
// ids, then a thing request for display metadata on the first few hits.
func (c *Client) Search(ctx context.Context, query string) ([]CatalogGame, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrQueryRequired
	}

	searchURL := c.baseURL + "/search?query=" + url.QueryEscape(query) + "&type=boardgame"
	var search searchResponse
	if err := c.getXML(ctx, searchURL, &search); err != nil {
		return nil, fmt.Errorf("bgg search: %w", err)
	}

	ids := make([]string, 0, c.maxResults)
	for _, item := range search.Items {
		if item.Type != "boardgame" {
			continue
		}
		ids = append(ids, item.ID)
		if len(ids) == c.maxResults {
			break
		}
	}
	if len(ids) == 0 {
		return []CatalogGame{}, nil
	}

	detailsURL := c.baseURL + "/thing?id=" + strings.Join(ids, ",") + "&stats=1"
	var details thingResponse
	if err := c.getXML(ctx, detailsURL, &details); err != nil {
		return nil, fmt.Errorf("bgg details: %w", err)
	}

	games := make([]CatalogGame, 0, len(details.Items))
	for _, item := range details.Items {
		games = append(games, toCatalogGame(item))
	}
	return games, nil
}

func (c *Client) getXML(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return xml.NewDecoder(resp.Body).Decode(dst)
}

func toCatalogGame(item thingItem) CatalogGame {
	game := CatalogGame{
		ID:            item.ID,
		Name:          primaryName(item.Names),
		YearPublished: item.YearPublished.Value,
		Image:         item.Image,
		Thumbnail:     item.Thumbnail,
		Description:   item.Description,
		MinPlayers:    item.MinPlayers.Value,
		MaxPlayers:    item.MaxPlayers.Value,
		PlayingTime:   item.PlayingTime.Value,
		Designers:     []string{},
		Publishers:    []string{},
	}

	for _, link := range item.Links {
		switch link.Type {
		case "boardgamedesigner":
			game.Designers = append(game.Designers, link.Value)
		case "boardgamepublisher":
			game.Publishers = append(game.Publishers, link.Value)
		}
	}

	if weight := item.Statistics.Ratings.AverageWeight.Value; weight != "" {
		if parsed, err := strconv.ParseFloat(weight, 64); err == nil {
			game.Complexity = strconv.FormatFloat(parsed, 'f', 1, 64)
		}
	}

	return game
}

func primaryName(names []thingName) string {
	for _, name := range names {
		if name.Type == "primary" {
			return name.Value
		}
	}
	if len(names) > 0 {
		return names[0].Value
	}
	return ""
}
