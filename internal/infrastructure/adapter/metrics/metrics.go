package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every Prometheus collector the service exposes
type Metrics struct {
	HttpTotal        *prometheus.CounterVec
	HttpInFlight     *prometheus.GaugeVec
	DepositsTotal    *prometheus.CounterVec
	WithdrawalsTotal *prometheus.CounterVec
	SolvencyTotal    *prometheus.CounterVec
	ActiveLocks      prometheus.Gauge
	CreatedLocks     prometheus.Gauge
}

// New builds the collectors and registers them on the given registerer
func New(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HttpTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "total number of http requests",
		}, []string{"method", "path", "status"}),
		HttpInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "number of in flight http requests",
		}, []string{"method"}),
		DepositsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_deposits_total",
			Help: "total number of deposit attempts",
		}, []string{"asset", "status"}),
		WithdrawalsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_withdrawals_total",
			Help: "total number of withdrawal attempts",
		}, []string{"asset", "status"}),
		SolvencyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vault_solvency_checks_total",
			Help: "total number of solvency checks",
		}, []string{"asset", "result"}),
		ActiveLocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vault_active_locks",
			Help: "number of currently active locks",
		}),
		CreatedLocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vault_created_locks",
			Help: "number of locks ever created, withdrawn ones included",
		}),
	}

	metrics.Enable(reg)
	return metrics
}

func (m *Metrics) Enable(reg prometheus.Registerer) {
	reg.MustRegister(m.HttpTotal)
	reg.MustRegister(m.HttpInFlight)
	reg.MustRegister(m.DepositsTotal)
	reg.MustRegister(m.WithdrawalsTotal)
	reg.MustRegister(m.SolvencyTotal)
	reg.MustRegister(m.ActiveLocks)
	reg.MustRegister(m.CreatedLocks)
}

func (m *Metrics) Disable(reg prometheus.Registerer) {
	reg.Unregister(m.HttpTotal)
	reg.Unregister(m.HttpInFlight)
	reg.Unregister(m.DepositsTotal)
	reg.Unregister(m.WithdrawalsTotal)
	reg.Unregister(m.SolvencyTotal)
	reg.Unregister(m.ActiveLocks)
	reg.Unregister(m.CreatedLocks)
}
