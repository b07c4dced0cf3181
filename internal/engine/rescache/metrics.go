package rescache

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "rescache"

// Metrics holds the Prometheus collectors of a cache. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	tasksSubmitted  *prometheus.CounterVec
	tasksFailed     prometheus.Counter
	staleTasks      prometheus.Counter
	reports         *prometheus.CounterVec
	reportsSuppress prometheus.Counter
	resources       prometheus.Gauge
	pendingTasks    prometheus.Gauge
}

// NewMetrics creates the cache collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		tasksSubmitted: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks submitted to the executor.",
		}, []string{"kind"}),
		tasksFailed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tasks_failed_total",
			Help:      "Total number of tasks that failed or panicked.",
		}),
		staleTasks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "stale_tasks_total",
			Help:      "Total number of tasks dropped because a newer mutation of the same resource was already applied.",
		}),
		reports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reports_total",
			Help:      "Total number of validity reports pushed to the update queue.",
		}, []string{"valid"}),
		reportsSuppress: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reports_suppressed_total",
			Help:      "Total number of validations whose result matched the last report.",
		}),
		resources: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "resources",
			Help:      "Number of resources in the validity table.",
		}),
		pendingTasks: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "pending_tasks",
			Help:      "Number of task handles not yet collected.",
		}),
	}
}

func (m *Metrics) submitted(kind taskKind) {
	if m == nil {
		return
	}
	m.tasksSubmitted.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.tasksFailed.Inc()
}

func (m *Metrics) stale() {
	if m == nil {
		return
	}
	m.staleTasks.Inc()
}

func (m *Metrics) reported(valid bool) {
	if m == nil {
		return
	}
	m.reports.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (m *Metrics) suppressed() {
	if m == nil {
		return
	}
	m.reportsSuppress.Inc()
}

func (m *Metrics) setResources(n int) {
	if m == nil {
		return
	}
	m.resources.Set(float64(n))
}

func (m *Metrics) setPending(n int) {
	if m == nil {
		return
	}
	m.pendingTasks.Set(float64(n))
}
