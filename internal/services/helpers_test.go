package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"arthsaathi/internal/fixtures"
	"arthsaathi/internal/kvstore/memory"
	"arthsaathi/internal/log"
)

const testCatalog = `{"personas":[
 {"id":"alpha","display_profile":{"name":"Alpha Rider"},
  "financial_baseline":{"avg_monthly_income":20000,"savings_balance":10000,"debt_total":0},
  "events":[
   {"event_id":"e1","title":"One","choices":[
     {"id":"a","financial_impact":-2000,"behavioral_tag":"Cautious Saver"},
     {"id":"b","financial_impact":1000,"future_liability":500,"behavioral_tag":"Risk Taker"}]},
   {"event_id":"e2","title":"Two","choices":[
     {"id":"a","financial_impact":3000,"behavioral_tag":"Strategic Planner"},
     {"id":"b","financial_impact":-500,"behavioral_tag":"Impulse Spender"}]},
   {"event_id":"e3","title":"Three","choices":[
     {"id":"a","financial_impact":-1000,"behavioral_tag":"Cautious Saver"},
     {"id":"b","financial_impact":0,"behavioral_tag":"Balanced Investor"}]}]},
 {"id":"beta","display_profile":{"name":"Beta Driver"},
  "financial_baseline":{"avg_monthly_income":10000,"savings_balance":0,"debt_total":0},
  "events":[
   {"event_id":"e1","title":"One","choices":[
     {"id":"a","financial_impact":500,"behavioral_tag":"Risk Taker"},
     {"id":"b","financial_impact":-500,"behavioral_tag":"Cautious Saver"}]},
   {"event_id":"e2","title":"Two","choices":[
     {"id":"a","financial_impact":500,"behavioral_tag":"Risk Taker"},
     {"id":"b","financial_impact":-500,"behavioral_tag":"Cautious Saver"}]}]}
]}`

type staticCatalog struct{ cat *fixtures.Catalog }

func (s staticCatalog) Get(context.Context, string) (*fixtures.Catalog, error) { return s.cat, nil }

// failingStore reads as empty and rejects every write.
type failingStore struct{}

var errStoreDown = errors.New("store down")

func (failingStore) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (failingStore) Set(context.Context, string, string) error { return errStoreDown }
func (failingStore) Remove(context.Context, string) error { return errStoreDown }
func (failingStore) Close() error { return nil }

type harness struct {
	store      *memory.Store
	accounts   *AccountService
	timeline   *TimelineService
	sims       *SimulationService
	assessment *AssessmentService
	podcasts   *PodcastService
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat, err := fixtures.Decode(strings.NewReader(testCatalog), fixtures.JSON)
	require.NoError(t, err)

	logger := log.Discard()
	store := memory.New()
	accounts := NewAccountService(store, "12345", logger)
	timeline := NewTimelineService(store, 0, logger)
	sims := NewSimulationService(staticCatalog{cat}, SimulationConfig{}, timeline, accounts, logger)
	sims.now = fixedClock(1_700_000_000_003)
	assessment := NewAssessmentService(timeline, accounts, logger)
	assessment.now = fixedClock(1_700_000_000_004)

	return &harness{
		store:      store,
		accounts:   accounts,
		timeline:   timeline,
		sims:       sims,
		assessment: assessment,
		podcasts:   NewPodcastService(timeline, accounts, logger),
	}
}
