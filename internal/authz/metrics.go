package authz

import (
	"github.com/prometheus/client_golang/prometheus"
)

var decisionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "contest",
		Subsystem: "authz",
		Name:      "decisions_total",
		Help:      "Authorization decisions by action, result and deny reason.",
	},
	[]string{"action", "result", "reason"},
)

// RegisterMetrics registers the gate's collectors
func RegisterMetrics(reg prometheus.Registerer) error {
	return reg.Register(decisionsTotal)
}

func observeDecision(d Decision) {
	result := "deny"
	if d.Allowed {
		result = "allow"
	}
	decisionsTotal.WithLabelValues(string(d.Action), result, string(d.Reason)).Inc()
}
