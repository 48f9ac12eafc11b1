package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const defaultRegionURL = "https://www.swimcloud.com/?r=country_USA"

// Swim is one row of a Swimcloud top-swims table.
type Swim struct {
	Rank  string `json:"rank"`
	Name  string `json:"name"`
	Club  string `json:"club"`
	Event string `json:"event"`
	Time  string `json:"time"`
	Score string `json:"score"`
}

// TopSwims holds the per-gender leaderboards from the region page.
type TopSwims struct {
	Men   []Swim `json:"men"`
	Women []Swim `json:"women"`
}

type SwimcloudClient struct {
	http    *http.Client
	url     string
	maxRows int
	log     *zap.Logger
}

func NewSwimcloudClient(log *zap.Logger) *SwimcloudClient {
	return &SwimcloudClient{
		http:    &http.Client{Timeout: 10 * time.Second},
		url:     defaultRegionURL,
		maxRows: 5,
		log:     log.With(zap.String("scraper", "swimcloud")),
	}
}

// FetchTopSwims downloads the region page and parses both gender cards.
// Rows that are missing a swimmer name are skipped.
func (c *SwimcloudClient) FetchTopSwims(ctx context.Context) (*TopSwims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build swimcloud request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; PoolClubBot/1.0)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch swimcloud page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch swimcloud page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse swimcloud page: %w", err)
	}

	result := c.parse(doc)
	c.log.Debug("Swimcloud rankings fetched",
		zap.Int("men", len(result.Men)),
		zap.Int("women", len(result.Women)),
	)
	return result, nil
}

func (c *SwimcloudClient) parse(doc *goquery.Document) *TopSwims {
	result := &TopSwims{Men: []Swim{}, Women: []Swim{}}

	section := doc.Find("section#js-region-top-swims-container")
	if section.Length() == 0 {
		return result
	}

	section.Find("div.js-top-swims-form-content > div.col-sm-6").Each(func(_ int, card *goquery.Selection) {
		gender := strings.ToLower(strings.TrimSpace(card.Find("h3.c-title").First().Text()))

		rows := c.parseTable(card.Find("table.c-table-clean tbody tr"))
		switch {
		case strings.HasPrefix(gender, "men"):
			result.Men = rows
		case strings.HasPrefix(gender, "women"):
			result.Women = rows
		}
	})

	return result
}

func (c *SwimcloudClient) parseTable(rows *goquery.Selection) []Swim {
	swims := []Swim{}

	rows.EachWithBreak(func(i int, tr *goquery.Selection) bool {
		if c.maxRows > 0 && i >= c.maxRows {
			return false
		}

		tds := tr.Find("td")
		if tds.Length() < 5 {
			return true
		}

		rank := strings.TrimSpace(tds.Eq(0).Text())
		if rank == "" {
			rank = strconv.Itoa(i + 1)
		}

		nameCell := tds.Eq(1)
		name := strings.TrimSpace(nameCell.Find("a").First().Text())
		if name == "" {
			name = strings.TrimSpace(nameCell.Text())
		}
		if name == "" {
			return true
		}

		club := strings.TrimSpace(nameCell.Find("div.u-color-mute").First().Text())
		if club == "" {
			teamCell := tds.Eq(2)
			club = strings.TrimSpace(teamCell.Find("a").First().AttrOr("title", ""))
			if club == "" {
				alt := teamCell.Find("img").First().AttrOr("alt", "")
				club = strings.TrimSpace(strings.ReplaceAll(alt, " logo", ""))
			}
		}

		swim := Swim{
			Rank:  rank,
			Name:  name,
			Club:  club,
			Event: strings.TrimSpace(tds.Eq(3).Text()),
			Time:  strings.TrimSpace(tds.Eq(4).Text()),
		}
		if tds.Length() > 5 {
			swim.Score = strings.TrimSpace(tds.Eq(5).Text())
		}

		swims = append(swims, swim)
		return true
	})

	return swims
}
