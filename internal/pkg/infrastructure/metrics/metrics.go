package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "alarmer_"

const (
	OutcomeInactive   = "inactive"
	OutcomeSuppressed = "suppressed"
	OutcomeEscalated  = "escalated"
	OutcomeFailed     = "failed"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	triggersTotal      *prometheus.CounterVec
	notificationsTotal *prometheus.CounterVec
	auditWriteFailures prometheus.Counter
	purgedRowsTotal    prometheus.Counter
	provisioningTotal  *prometheus.CounterVec
	acknowledgedTotal  prometheus.Counter
)

func init() {
	register(prometheus.DefaultRegisterer)
}

func register(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		triggersTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "triggers_total",
				Help: "Alarm triggers received by outcome",
			},
			[]string{"outcome"},
		)
		notificationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "notifications_total",
				Help: "Notification mails by result",
			},
			[]string{"result"},
		)
		auditWriteFailures = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "audit_write_failures_total",
				Help: "Audit log inserts that failed and were skipped",
			},
		)
		purgedRowsTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "audit_purged_rows_total",
				Help: "Audit log rows removed by the retention cleaner",
			},
		)
		provisioningTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "provisioning_total",
				Help: "Alarm provisioning operations by operation and result",
			},
			[]string{"operation", "result"},
		)
		acknowledgedTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "acknowledged_total",
				Help: "Alarms acknowledged by users",
			},
		)

		reg.MustRegister(triggersTotal, notificationsTotal, auditWriteFailures, purgedRowsTotal, provisioningTotal, acknowledgedTotal)
	})
}

func Trigger(outcome string) {
	triggersTotal.WithLabelValues(outcome).Inc()
}

func Notification(err error) {
	notificationsTotal.WithLabelValues(result(err)).Inc()
}

func AuditWriteFailed() {
	auditWriteFailures.Inc()
}

func Purged(rows int64) {
	if rows > 0 {
		purgedRowsTotal.Add(float64(rows))
	}
}

func Provisioning(operation string, err error) {
	provisioningTotal.WithLabelValues(operation, result(err)).Inc()
}

func ProvisioningResult(operation string, ok bool) {
	r := ResultSuccess
	if !ok {
		r = ResultError
	}
	provisioningTotal.WithLabelValues(operation, r).Inc()
}

func Acknowledged() {
	acknowledgedTotal.Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
