// Package metrics exposes Prometheus counters for the long-running
// operations of the cryptographic core — chiefly mG table generation,
// which can take minutes at large mmax and benefits from an
// observable progress counter the way the teacher observes beacon
// and HTTP activity.
package metrics

import (
	"net"
	"net/http"
	"runtime"
	"strings"
	"sync"

	"github.com/lgtm-migrator/libepir/common/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the process-wide collector registry exposed by Start.
	Registry = prometheus.NewRegistry()

	// TableBuildPointsComputed counts mG points produced across all
	// Generate calls in this process.
	TableBuildPointsComputed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "epir_mgtable_points_computed_total",
		Help: "Number of mG table points computed by mgtable.Generate.",
	})

	// TableBuildInProgress is 1 while a Generate call is running, 0
	// otherwise; a gauge rather than a counter since only one build
	// is expected to run at a time per process.
	TableBuildInProgress = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "epir_mgtable_build_in_progress",
		Help: "1 while an mG table build is running, 0 otherwise.",
	})

	// SelectorSlotsEncrypted counts selector ciphers produced across
	// all Create/CreateFast calls.
	SelectorSlotsEncrypted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "epir_selector_slots_encrypted_total",
		Help: "Number of selector slots encrypted.",
	})

	// ReplyDecryptOperations counts reply.Decrypt calls, labelled by
	// outcome ("ok" or "undecryptable").
	ReplyDecryptOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "epir_reply_decrypt_total",
		Help: "Number of reply.Decrypt calls by outcome.",
	}, []string{"outcome"})

	metricsBound = false
)

func bindMetrics() error {
	if metricsBound {
		return nil
	}
	metricsBound = true

	if err := Registry.Register(collectors.NewGoCollector()); err != nil {
		return err
	}
	if err := Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return err
	}

	collectorsList := []prometheus.Collector{
		TableBuildPointsComputed,
		TableBuildInProgress,
		SelectorSlotsEncrypted,
		ReplyDecryptOperations,
	}
	for _, c := range collectorsList {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveTableBuild returns a mgtable.ProgressFunc that feeds
// TableBuildPointsComputed, plus a done func that must be called once
// the build finishes (success or failure) to clear the in-progress
// gauge.
func ObserveTableBuild() (progress func(pointsComputed uint64), done func()) {
	TableBuildInProgress.Set(1)
	var mu sync.Mutex
	var last uint64
	return func(pointsComputed uint64) {
			mu.Lock()
			defer mu.Unlock()
			if pointsComputed > last {
				TableBuildPointsComputed.Add(float64(pointsComputed - last))
				last = pointsComputed
			}
		}, func() {
			TableBuildInProgress.Set(0)
		}
}

// ObserveReplyDecrypt records the outcome of a reply.Decrypt call.
func ObserveReplyDecrypt(err error) {
	if err != nil {
		ReplyDecryptOperations.WithLabelValues("undecryptable").Inc()
		return
	}
	ReplyDecryptOperations.WithLabelValues("ok").Inc()
}

// Start binds the registry and serves it at /metrics on bindAddr,
// grounded on the teacher's metrics.Start but trimmed to this
// module's single registry and no peer-relay surface.
func Start(bindAddr string) net.Listener {
	logger := log.DefaultLogger()
	if err := bindMetrics(); err != nil {
		logger.Warnw("metrics setup failed", "err", err)
		return nil
	}

	if !strings.Contains(bindAddr, ":") {
		bindAddr = "localhost:" + bindAddr
	}
	l, err := net.Listen("tcp", bindAddr)
	if err != nil {
		logger.Warnw("metrics listen failed", "err", err)
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry}))
	mux.HandleFunc("/debug/gc", func(w http.ResponseWriter, _ *http.Request) {
		runtime.GC()
		_, _ = w.Write([]byte("gc run complete"))
	})

	s := http.Server{Addr: l.Addr().String(), Handler: mux}
	go func() {
		logger.Infow("metrics listener finished", "err", s.Serve(l))
	}()
	return l
}
