package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts overview renders and version switches.
type Recorder struct {
	reg             *prom.Registry
	versionSwitches *prom.CounterVec
	overviewRenders prom.Counter
	rewriteNoops    prom.Counter
}

// NewRecorder registers the docnav metrics on reg, or on a fresh registry
// when reg is nil.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		reg: reg,
		versionSwitches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docnav",
			Name:      "version_switches_total",
			Help:      "Version switches by target version",
		}, []string{"version"}),
		overviewRenders: prom.NewCounter(prom.CounterOpts{
			Namespace: "docnav",
			Name:      "overview_renders_total",
			Help:      "Overview pages rendered",
		}),
		rewriteNoops: prom.NewCounter(prom.CounterOpts{
			Namespace: "docnav",
			Name:      "rewrite_noop_total",
			Help:      "Rewrites that left the path unchanged because no version was given",
		}),
	}
	reg.MustRegister(r.versionSwitches, r.overviewRenders, r.rewriteNoops)
	return r
}

func (r *Recorder) IncVersionSwitch(version string) {
	r.versionSwitches.WithLabelValues(version).Inc()
}

func (r *Recorder) IncOverviewRender() {
	r.overviewRenders.Inc()
}

func (r *Recorder) IncRewriteNoop() {
	r.rewriteNoops.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
