package metrics

import (
	"strconv"

	"github.com/Lexv0lk/token-store/internal/token/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "token_store"

// Sink turns ledger events into Prometheus series on its own registry.
type Sink struct {
	registry *prometheus.Registry

	units          *prometheus.CounterVec
	redemptions    *prometheus.CounterVec
	catalogChanges *prometheus.CounterVec
	totalSupply    prometheus.Gauge
}

func NewSink() *Sink {
	s := &Sink{
		registry: prometheus.NewRegistry(),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "units_total",
			Help:      "Base units moved by ledger operations, by event kind.",
		}, []string{"kind"}),
		redemptions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Successful redemptions per catalog item.",
		}, []string{"item_id"}),
		catalogChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_changes_total",
			Help:      "Catalog mutations by event kind.",
		}, []string{"kind"}),
		totalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "total_supply",
			Help:      "Units currently in circulation.",
		}),
	}

	s.registry.MustRegister(s.units, s.redemptions, s.catalogChanges, s.totalSupply)

	return s
}

func (s *Sink) Registry() *prometheus.Registry {
	return s.registry
}

// Observe seeds the supply gauge from restored state, before any event is published.
func (s *Sink) Observe(supply domain.Supply) {
	s.totalSupply.Set(float64(supply.Total()))
}

// WatchCatalog exposes the catalog size, read at scrape time.
func (s *Sink) WatchCatalog(size func() int) error {
	return s.registry.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "catalog_items",
		Help:      "Items currently listed in the catalog.",
	}, func() float64 {
		return float64(size())
	}))
}

func (s *Sink) Publish(event domain.Event) {
	amount := float64(event.Amount)

	switch event.Kind {
	case domain.EventMinted:
		s.units.WithLabelValues(string(event.Kind)).Add(amount)
		s.totalSupply.Add(amount)
	case domain.EventBurned:
		s.units.WithLabelValues(string(event.Kind)).Add(amount)
		s.totalSupply.Sub(amount)
	case domain.EventTransferred:
		s.units.WithLabelValues(string(event.Kind)).Add(amount)
	case domain.EventRedeemed:
		s.units.WithLabelValues(string(event.Kind)).Add(amount)
		s.redemptions.WithLabelValues(strconv.FormatUint(event.ItemID, 10)).Inc()
		// Credited redemptions stay in circulation.
		if event.Counterparty == "" {
			s.totalSupply.Sub(amount)
		}
	case domain.EventItemAdded, domain.EventItemCostUpdated, domain.EventItemRemoved:
		s.catalogChanges.WithLabelValues(string(event.Kind)).Inc()
	}
}
