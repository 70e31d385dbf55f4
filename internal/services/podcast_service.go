package services

import (
	"context"
	"fmt"
	"strconv"

	"arthsaathi/internal/core"
	"arthsaathi/internal/log"
)

const (
	strongHealth   = 70.0
	moderateHealth = 50.0
	baseMinutes    = 12
	minuteSpread   = 8
)

type podcastCategory struct {
	Name  string
	Color string
}

var categories = map[string]podcastCategory{
	"Cautious Saver":    {"Risk Management", "#4ECDC4"},
	"Risk Taker":        {"Investment Strategy", "#FF6B6B"},
	"Balanced Investor": {"Financial Planning", "#A78BFA"},
	"Impulse Spender":   {"Budgeting", "#FFD93D"},
	"Strategic Planner": {"Wealth Building", "#D7FF00"},
}

const fallbackBehavior = "Balanced Investor"

// Episode is a generated podcast built from one simulation entry.
type Episode struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Minutes          int      `json:"minutes"`
	Category         string   `json:"category"`
	Color            string   `json:"color"`
	PersonaName      string   `json:"personaName"`
	TotalImpact      int64    `json:"totalImpact"`
	HealthScore      float64  `json:"healthScore"`
	DominantBehavior string   `json:"dominantBehavior"`
	Timestamp        int64    `json:"timestamp"`
	Insights         []string `json:"insights"`
}

// Duration renders the episode length, e.g. "14 min".
func (e Episode) Duration() string { return fmt.Sprintf("%d min", e.Minutes) }

// EpisodeFor derives an episode from a simulation entry. The result depends
// only on the entry, so regenerating the list is stable.
func EpisodeFor(entry core.TimelineEntry) Episode {
	cat, ok := categories[entry.DominantBehavior]
	if !ok {
		cat = categories[fallbackBehavior]
	}

	var insights []string
	if entry.TotalImpact >= 0 {
		insights = append(insights, fmt.Sprintf(
			"You made strategic financial decisions that resulted in a positive impact of %s.",
			core.FormatRupees(entry.TotalImpact)))
	} else {
		insights = append(insights, fmt.Sprintf(
			"Your decisions led to a financial impact of %s. Let's explore how to improve.",
			core.FormatRupees(entry.TotalImpact)))
	}
	switch {
	case entry.HealthScore >= strongHealth:
		insights = append(insights, "Your financial health score is strong, indicating sustainable decision-making patterns.")
	case entry.HealthScore >= moderateHealth:
		insights = append(insights, "Your financial health is moderate. There's room for improvement in your financial strategies.")
	default:
		insights = append(insights, "Your financial health needs attention. This podcast will guide you toward better financial stability.")
	}
	insights = append(insights, fmt.Sprintf(
		"Your dominant behavioral pattern was %q. Understanding this helps in making better future decisions.",
		entry.DominantBehavior))

	minutes := baseMinutes + int(entry.Timestamp%minuteSpread)
	if minutes < baseMinutes {
		minutes = baseMinutes // negative timestamps
	}

	description := fmt.Sprintf("Deep dive into your simulation as %s. Learn from your decisions and discover "+
		"actionable strategies to improve your financial health.", entry.PersonaName)

	return Episode{
		ID:               strconv.FormatInt(entry.Timestamp, 10),
		Title:            "Financial Journey Insights: " + entry.PersonaName,
		Description:      description,
		Minutes:          minutes,
		Category:         cat.Name,
		Color:            cat.Color,
		PersonaName:      entry.PersonaName,
		TotalImpact:      entry.TotalImpact,
		HealthScore:      entry.HealthScore,
		DominantBehavior: entry.DominantBehavior,
		Timestamp:        entry.Timestamp,
		Insights:         insights,
	}
}

// PodcastService lists episodes for the signed-in user's simulations.
type PodcastService struct {
	timeline *TimelineService
	accounts *AccountService
	logger   *log.Logger
}

func NewPodcastService(timeline *TimelineService, accounts *AccountService, logger *log.Logger) *PodcastService {
	return &PodcastService{
		timeline: timeline,
		accounts: accounts,
		logger:   componentLogger(logger, log.ComponentPodcast),
	}
}

func (s *PodcastService) Episodes(ctx context.Context) ([]Episode, error) {
	var email string
	if s.accounts != nil {
		email = s.accounts.CurrentEmail(ctx)
	}
	entries, err := s.timeline.ListForUser(ctx, email)
	if err != nil {
		return nil, err
	}
	var out []Episode
	for _, e := range entries {
		if e.Type == core.EntrySimulation {
			out = append(out, EpisodeFor(e))
		}
	}
	s.logger.DebugContext(ctx, "Episodes generated", log.FieldCount, len(out))
	return out, nil
}
