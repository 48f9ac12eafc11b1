// Package catalog is the read-only configuration store for site content:
// booking prices, membership plans, class and event listings, and static
// page text. Documents are JSON files under the data directory. A missing
// or broken document is never fatal; the affected lookup falls back to
// hardcoded defaults.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"pool-club/internal/data/entity"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	DefaultFreeSwimPrice     int64 = 40000
	DefaultLaneTrainingPrice int64 = 40000
	DefaultOtherPrice        int64 = 40000
)

type Prices struct {
	FreeSwim     int64 `mapstructure:"free_swim"`
	LaneTraining int64 `mapstructure:"lane_training"`
	Other        int64 `mapstructure:"other"`
}

type Plan struct {
	Slug         string `mapstructure:"slug" json:"slug"`
	Name         string `mapstructure:"name" json:"name"`
	Price        int64  `mapstructure:"price" json:"price"`
	DurationDays int    `mapstructure:"duration_days" json:"duration_days"`
}

type Class struct {
	Slug        string `mapstructure:"slug" json:"slug"`
	Name        string `mapstructure:"name" json:"name"`
	Coach       string `mapstructure:"coach" json:"coach"`
	Schedule    string `mapstructure:"schedule" json:"schedule"`
	Capacity    int    `mapstructure:"capacity" json:"capacity"`
	Price       int64  `mapstructure:"price" json:"price"`
	Description string `mapstructure:"description" json:"description"`
}

type Event struct {
	Slug        string `mapstructure:"slug" json:"slug"`
	Name        string `mapstructure:"name" json:"name"`
	Date        string `mapstructure:"date" json:"date"` // YYYY-MM-DD
	Status      string `mapstructure:"status" json:"status"`
	Description string `mapstructure:"description" json:"description"`
}

type Catalog struct {
	prices     Prices
	plans      []Plan
	classes    []Class
	events     []Event
	site       map[string]any
	hours      []map[string]any
	facilities []map[string]any

	log *zap.Logger
}

// Load reads every catalog document under dataDir. Missing documents leave
// the corresponding section empty (or defaulted) and are only logged.
func Load(dataDir string, log *zap.Logger) *Catalog {
	c := &Catalog{
		site: map[string]any{},
		log:  log.With(zap.String("component", "catalog")),
	}

	var prices struct {
		Prices Prices `mapstructure:"prices"`
	}
	if err := c.loadDocument(dataDir, "prices.json", &prices); err == nil {
		c.prices = prices.Prices
	}

	var plans struct {
		Plans []Plan `mapstructure:"plans"`
	}
	if err := c.loadDocument(dataDir, "plans.json", &plans); err == nil {
		c.plans = plans.Plans
	}

	var classes struct {
		Classes []Class `mapstructure:"classes"`
	}
	if err := c.loadDocument(dataDir, "classes.json", &classes); err == nil {
		c.classes = classes.Classes
	}

	var events struct {
		Events []Event `mapstructure:"events"`
	}
	if err := c.loadDocument(dataDir, "events.json", &events); err == nil {
		c.events = events.Events
	}

	var site struct {
		Site map[string]any `mapstructure:"site"`
	}
	if err := c.loadDocument(dataDir, "site.json", &site); err == nil && site.Site != nil {
		c.site = site.Site
	}

	var hours struct {
		Hours []map[string]any `mapstructure:"hours"`
	}
	if err := c.loadDocument(dataDir, "hours.json", &hours); err == nil {
		c.hours = hours.Hours
	}

	var facilities struct {
		Facilities []map[string]any `mapstructure:"facilities"`
	}
	if err := c.loadDocument(dataDir, "facilities.json", &facilities); err == nil {
		c.facilities = facilities.Facilities
	}

	return c
}

func (c *Catalog) loadDocument(dataDir, name string, target any) error {
	v := viper.New()
	v.SetConfigFile(filepath.Join(dataDir, name))
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		c.log.Warn("Catalog document unavailable, using defaults",
			zap.String("document", name),
			zap.Error(err),
		)
		return fmt.Errorf("read catalog document %s: %w", name, err)
	}

	if err := v.Unmarshal(target); err != nil {
		c.log.Warn("Catalog document malformed, using defaults",
			zap.String("document", name),
			zap.Error(err),
		)
		return fmt.Errorf("unmarshal catalog document %s: %w", name, err)
	}

	return nil
}

// PriceFor resolves the booking price for a type, falling back to the
// hardcoded defaults when the prices document is missing or zero.
func (c *Catalog) PriceFor(bookingType entity.BookingType) int64 {
	switch bookingType {
	case entity.BookingFreeSwim:
		if c.prices.FreeSwim > 0 {
			return c.prices.FreeSwim
		}
		return DefaultFreeSwimPrice
	case entity.BookingLaneTraining:
		if c.prices.LaneTraining > 0 {
			return c.prices.LaneTraining
		}
		return DefaultLaneTrainingPrice
	default:
		if c.prices.Other > 0 {
			return c.prices.Other
		}
		return DefaultOtherPrice
	}
}

func (c *Catalog) Plans() []Plan {
	return c.plans
}

func (c *Catalog) PlanBySlug(slug string) *Plan {
	for i := range c.plans {
		if c.plans[i].Slug == slug {
			return &c.plans[i]
		}
	}
	return nil
}

func (c *Catalog) Classes() []Class {
	return c.classes
}

func (c *Catalog) ClassBySlug(slug string) *Class {
	for i := range c.classes {
		if c.classes[i].Slug == slug {
			return &c.classes[i]
		}
	}
	return nil
}

// PublishedEvents returns published events sorted by date ascending.
// Events with unparseable dates sort last.
func (c *Catalog) PublishedEvents() []Event {
	var published []Event
	for _, event := range c.events {
		if event.Status == "published" {
			published = append(published, event)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return eventDate(published[i]).Before(eventDate(published[j]))
	})
	return published
}

func (c *Catalog) EventBySlug(slug string) *Event {
	for i := range c.events {
		if c.events[i].Slug == slug && c.events[i].Status == "published" {
			return &c.events[i]
		}
	}
	return nil
}

func (c *Catalog) Site() map[string]any {
	return c.site
}

func (c *Catalog) Hours() []map[string]any {
	return c.hours
}

func (c *Catalog) Facilities() []map[string]any {
	return c.facilities
}

func eventDate(event Event) time.Time {
	date, err := time.Parse("2006-01-02", event.Date)
	if err != nil {
		return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	return date
}
