package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	planGenerations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "housepoints_planner",
		Subsystem: "schedule",
		Name:      "plan_generations_total",
		Help:      "Number of weekly fallback plans generated.",
	})

	planAssignments = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "housepoints_planner",
		Subsystem: "schedule",
		Name:      "plan_assignments_total",
		Help:      "Number of task assignments produced across all generated plans.",
	})
)

func init() {
	prometheus.MustRegister(planGenerations, planAssignments)
}

// RecordPlanGenerated counts one planning run and its assignment volume.
func RecordPlanGenerated(assignments int) {
	planGenerations.Inc()
	planAssignments.Add(float64(assignments))
}
