package bgg

// CatalogGame is the display metadata offered for one search result.
type CatalogGame struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	YearPublished string   `json:"year_published"`
	Image         string   `json:"image"`
	Thumbnail     string   `json:"thumbnail"`
	Description   string   `json:"description"`
	MinPlayers    string   `json:"min_players"`
	MaxPlayers    string   `json:"max_players"`
	PlayingTime   string   `json:"playing_time"`
	Complexity    string   `json:"complexity"`
	Designers     []string `json:"designers"`
	Publishers    []string `json:"publishers"`
}

// Wire shapes for the BoardGameGeek XML API v2.

type searchResponse struct {
	Items []searchItem `xml:"item"`
}

type searchItem struct {
	ID   string `xml:"id,attr"`
	Type string `xml:"type,attr"`
}

type thingResponse struct {
	Items []thingItem `xml:"item"`
}

type thingItem struct {
	ID            string          `xml:"id,attr"`
	Names         []thingName     `xml:"name"`
	YearPublished valueAttr       `xml:"yearpublished"`
	Image         string          `xml:"image"`
	Thumbnail     string          `xml:"thumbnail"`
	Description   string          `xml:"description"`
	MinPlayers    valueAttr       `xml:"minplayers"`
	MaxPlayers    valueAttr       `xml:"maxplayers"`
	PlayingTime   valueAttr       `xml:"playingtime"`
	Links         []thingLink     `xml:"link"`
	Statistics    thingStatistics `xml:"statistics"`
}

type thingName struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type thingLink struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type thingStatistics struct {
	Ratings struct {
		AverageWeight valueAttr `xml:"averageweight"`
	} `xml:"ratings"`
}

type valueAttr struct {
	Value string `xml:"value,attr"`
}
