package catalog

import (
	"testing"

	"pool-club/internal/data/entity"

	"go.uber.org/zap"
)

func TestPriceFor(t *testing.T) {
	c := Load("testdata", zap.NewNop())

	if got := c.PriceFor(entity.BookingFreeSwim); got != 35000 {
		t.Errorf("free swim price = %d, want 35000", got)
	}
	if got := c.PriceFor(entity.BookingLaneTraining); got != 45000 {
		t.Errorf("lane training price = %d, want 45000", got)
	}
	// Zero in the document falls back to the default.
	if got := c.PriceFor(entity.BookingOther); got != DefaultOtherPrice {
		t.Errorf("other price = %d, want default %d", got, DefaultOtherPrice)
	}
}

func TestPriceDefaultsWithoutDocuments(t *testing.T) {
	c := Load("no-such-dir", zap.NewNop())

	if got := c.PriceFor(entity.BookingFreeSwim); got != DefaultFreeSwimPrice {
		t.Errorf("free swim price = %d, want default %d", got, DefaultFreeSwimPrice)
	}
	if c.PlanBySlug("monthly") != nil {
		t.Error("expected no plans without documents")
	}
	if len(c.PublishedEvents()) != 0 {
		t.Error("expected no events without documents")
	}
}

func TestPublishedEventsSorted(t *testing.T) {
	c := Load("testdata", zap.NewNop())

	events := c.PublishedEvents()
	if len(events) != 3 {
		t.Fatalf("published events = %d, want 3 (draft excluded)", len(events))
	}
	if events[0].Slug != "sooner" || events[1].Slug != "later" {
		t.Errorf("events out of order: %s, %s", events[0].Slug, events[1].Slug)
	}
	// Unparseable dates sort last instead of breaking the listing.
	if events[2].Slug != "broken-date" {
		t.Errorf("broken date event should sort last, got %s", events[2].Slug)
	}

	if c.EventBySlug("draft") != nil {
		t.Error("draft event must not resolve by slug")
	}
	if c.EventBySlug("sooner") == nil {
		t.Error("published event should resolve by slug")
	}
}

func TestPlanLookup(t *testing.T) {
	c := Load("testdata", zap.NewNop())

	plan := c.PlanBySlug("monthly")
	if plan == nil || plan.DurationDays != 30 || plan.Price != 100000 {
		t.Errorf("unexpected plan: %+v", plan)
	}
	if c.PlanBySlug("lifetime") != nil {
		t.Error("unknown plan should return nil")
	}
}
