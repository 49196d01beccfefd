package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/domain"
)

// Fixed "now" used across classifier tests: Tuesday 2026-09-01.
var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestClassifier() *Classifier {
	return NewClassifier(clock.NewFixed(testNow), 100)
}

func TestClassify_SelloutGuard(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	t.Run("three rooms left is critical", func(t *testing.T) {
		status := c.Classify(3, "Suite", "2026-02-15", 18)

		if status.Level != domain.LevelCritical {
			t.Errorf("level = %s, want critical", status.Level)
		}
		if status.Urgency != domain.UrgencyImmediate {
			t.Errorf("urgency = %s, want immediate", status.Urgency)
		}
		if status.Confidence != 95 {
			t.Errorf("confidence = %d, want 95", status.Confidence)
		}
		if len(status.Reasoning) == 0 || !strings.Contains(status.Reasoning[0], "3 rooms left") {
			t.Errorf("first reasoning line should mention rooms left, got %v", status.Reasoning)
		}
	})

	t.Run("zero inventory never divides", func(t *testing.T) {
		status := c.Classify(0, "Deluxe", "2026-09-10", 45)
		if status.Level != domain.LevelCritical || status.Urgency != domain.UrgencyImmediate {
			t.Errorf("zero inventory should classify critical/immediate, got %s/%s", status.Level, status.Urgency)
		}
		if status.Confidence != 95 {
			t.Errorf("confidence = %d, want 95", status.Confidence)
		}
	})

	t.Run("five and six straddle the threshold", func(t *testing.T) {
		at5 := c.Classify(5, "Deluxe", "2026-09-10", 45)
		at6 := c.Classify(6, "Deluxe", "2026-09-10", 45)

		if at5.Confidence != 95 || !strings.Contains(at5.Reasoning[0], "5 rooms left") {
			t.Errorf("inventory 5 should take the sellout branch, got %+v", at5)
		}
		if at6.Confidence == 95 && strings.Contains(at6.Reasoning[0], "rooms left") {
			t.Errorf("inventory 6 must not take the sellout branch, got %+v", at6)
		}
	})
}

func TestClassifyDemandRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rate       float64
		level      domain.InventoryLevel
		urgency    domain.Urgency
		confidence int
	}{
		{0.81, domain.LevelCritical, domain.UrgencyImmediate, 90},
		{0.8, domain.LevelOptimal, domain.UrgencyRoutine, 85}, // strict >, not >=
		{0.61, domain.LevelOptimal, domain.UrgencyRoutine, 85},
		{0.6, domain.LevelLow, domain.UrgencyMonitor, 80},
		{0.31, domain.LevelLow, domain.UrgencyMonitor, 80},
		{0.3, domain.LevelOversupply, domain.UrgencyImmediate, 85},
		{0.1, domain.LevelOversupply, domain.UrgencyImmediate, 85},
	}

	for _, tc := range cases {
		got := classifyDemandRate(tc.rate)
		if got.Level != tc.level || got.Urgency != tc.urgency || got.Confidence != tc.confidence {
			t.Errorf("rate %.2f: got %s/%s/%d, want %s/%s/%d",
				tc.rate, got.Level, got.Urgency, got.Confidence, tc.level, tc.urgency, tc.confidence)
		}
	}
}

func TestClassify_DemandBranches(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	// Deluxe 2026-09-02 samples a demand channel of 0.938: rate 0.975.
	t.Run("high demand is critical", func(t *testing.T) {
		status := c.Classify(6, "Deluxe", "2026-09-02", 45)
		if status.Level != domain.LevelCritical || status.Confidence != 90 {
			t.Errorf("got %s/%d, want critical/90", status.Level, status.Confidence)
		}
		if !strings.Contains(status.Reasoning[0], "High demand") {
			t.Errorf("primary reasoning should state high demand, got %v", status.Reasoning)
		}
	})

	// Deluxe 2026-09-01 samples a demand channel of 0.220: rate 0.688.
	t.Run("moderate pace is optimal", func(t *testing.T) {
		status := c.Classify(6, "Deluxe", "2026-09-01", 45)
		if status.Level != domain.LevelOptimal || status.Urgency != domain.UrgencyRoutine {
			t.Errorf("got %s/%s, want optimal/routine", status.Level, status.Urgency)
		}
		if !strings.Contains(status.Reasoning[0], "Good pace") {
			t.Errorf("primary reasoning should state good pace, got %v", status.Reasoning)
		}
	})
}

func TestClassify_ContextualReasoning(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	t.Run("last minute window", func(t *testing.T) {
		status := c.Classify(20, "Deluxe", "2026-09-03", 45)
		if !containsSubstring(status.Reasoning, "Last minute window - 2 days out") {
			t.Errorf("want last-minute note, got %v", status.Reasoning)
		}
	})

	t.Run("booking window", func(t *testing.T) {
		status := c.Classify(20, "Deluxe", "2026-09-10", 45)
		if !containsSubstring(status.Reasoning, "Inside booking window - 9 days out") {
			t.Errorf("want booking-window note, got %v", status.Reasoning)
		}
	})

	t.Run("far out dates get neither note", func(t *testing.T) {
		status := c.Classify(20, "Deluxe", "2026-10-15", 45)
		if containsSubstring(status.Reasoning, "window") {
			t.Errorf("no window note expected, got %v", status.Reasoning)
		}
	})

	t.Run("weekend is flagged and drives seasonal trend", func(t *testing.T) {
		status := c.Classify(20, "Deluxe", "2026-09-05", 45) // Saturday
		if !containsSubstring(status.Reasoning, "Weekend date") {
			t.Errorf("want weekend note, got %v", status.Reasoning)
		}
		if status.Factors.SeasonalTrend != domain.SeasonPeak {
			t.Errorf("seasonal trend = %s, want peak", status.Factors.SeasonalTrend)
		}

		weekday := c.Classify(20, "Deluxe", "2026-09-01", 45)
		if weekday.Factors.SeasonalTrend != domain.SeasonShoulder {
			t.Errorf("weekday seasonal trend = %s, want shoulder", weekday.Factors.SeasonalTrend)
		}
	})

	t.Run("competitive position", func(t *testing.T) {
		// 6 rooms against a comp-set figure of at least 13.5 (30% of 45).
		advantage := c.Classify(6, "Deluxe", "2026-09-01", 45)
		if advantage.Factors.CompetitorPosition != domain.CompetitorAdvantage {
			t.Errorf("position = %s, want advantage", advantage.Factors.CompetitorPosition)
		}
		if !containsSubstring(advantage.Reasoning, "Competitive advantage") {
			t.Errorf("want advantage note, got %v", advantage.Reasoning)
		}

		// 100 rooms against a figure below 60 (60% of capacity 100).
		parity := c.Classify(100, "Standard King", "2026-09-01", 100)
		if parity.Factors.CompetitorPosition != domain.CompetitorParity {
			t.Errorf("position = %s, want parity", parity.Factors.CompetitorPosition)
		}
		if !containsSubstring(parity.Reasoning, "parity") {
			t.Errorf("want parity note, got %v", parity.Reasoning)
		}
	})

	t.Run("positive event appends note without softening critical", func(t *testing.T) {
		// Deluxe 2026-09-02 samples an event channel of 0.934 and classifies
		// critical on demand; the event must not soften it.
		status := c.Classify(6, "Deluxe", "2026-09-02", 45)
		if status.Factors.EventImpact != domain.EventPositive {
			t.Fatalf("event impact = %s, want positive", status.Factors.EventImpact)
		}
		if !containsSubstring(status.Reasoning, "Local event") {
			t.Errorf("want event note, got %v", status.Reasoning)
		}
		if status.Level != domain.LevelCritical {
			t.Errorf("event upgrade must not change critical, got %s", status.Level)
		}
	})
}

func TestUpgradeLevel(t *testing.T) {
	t.Parallel()

	cases := map[domain.InventoryLevel]domain.InventoryLevel{
		domain.LevelOversupply: domain.LevelLow,
		domain.LevelLow:        domain.LevelOptimal,
		domain.LevelOptimal:    domain.LevelOptimal,
		domain.LevelCritical:   domain.LevelCritical,
	}
	for from, want := range cases {
		if got := upgradeLevel(from); got != want {
			t.Errorf("upgradeLevel(%s) = %s, want %s", from, got, want)
		}
	}
}

func TestClassify_Determinism(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	a := c.Classify(3, "Suite", "2026-02-15", 18)
	b := c.Classify(3, "Suite", "2026-02-15", 18)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated classification differs:\n%+v\n%+v", a, b)
	}
}

func TestClassify_Presentation(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	status := c.Classify(3, "Suite", "2026-02-15", 18)
	if status.DisplayText != "Sellout Risk" {
		t.Errorf("display text = %q, want Sellout Risk", status.DisplayText)
	}
	if status.Color != "red" {
		t.Errorf("color = %q, want red", status.Color)
	}
	if !strings.Contains(status.ActionRequired, "Immediate") {
		t.Errorf("action = %q, want immediate action", status.ActionRequired)
	}
}

func TestClassify_MalformedDate(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	// Must not panic and must still produce a complete record.
	status := c.Classify(20, "Deluxe", "not-a-date", 45)
	if status.Level == "" || status.DisplayText == "" {
		t.Fatalf("malformed date should degrade to a full record, got %+v", status)
	}
	if status.Factors.SeasonalTrend != domain.SeasonShoulder {
		t.Errorf("malformed date should read as a weekday, got %s", status.Factors.SeasonalTrend)
	}
}

func TestClassify_DefaultCapacity(t *testing.T) {
	t.Parallel()
	c := newTestClassifier()

	// Capacity 0 falls back to the configured default (100 here); the
	// snapshot and therefore the output must match an explicit 100.
	implicit := c.Classify(20, "Deluxe", "2026-09-10", 0)
	explicit := c.Classify(20, "Deluxe", "2026-09-10", 100)
	if !reflect.DeepEqual(implicit, explicit) {
		t.Fatalf("default capacity should equal explicit 100:\n%+v\n%+v", implicit, explicit)
	}
}

func containsSubstring(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
