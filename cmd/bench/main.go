// Command bench runs a synthetic workload against the cache and exposes optional pprof/Prometheus endpoints.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"strconv"
	"time"

	"github.com/IvanBrykalov/lrucache/cache"
	pmet "github.com/IvanBrykalov/lrucache/metrics/prom"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", ":8080", "serve Prometheus metrics at addr")
	)
	flag.Parse()

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	metrics := pmet.New(nil, "lru", "bench", nil)
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics: serving at %s", *metricsAddr)
		log.Println(http.ListenAndServe(*metricsAddr, nil))
	}()

	// ---- Build cache ----
	c := cache.New[string, string](cache.Options[string, string]{
		Capacity: *capacity,
		Metrics:  metrics,
	})
	defer func() { _ = c.Close() }()

	// ---- Preload half capacity to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		k := "k:" + strconv.Itoa(i)
		c.Set(k, "v"+strconv.Itoa(i))
	}

	// ---- Load generation ----
	// The engine is single-writer, so the whole workload runs on this
	// goroutine; only the HTTP handlers above run beside it (prometheus
	// collectors are goroutine-safe).
	r := rand.New(rand.NewSource(*seed))
	zipf := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))

	var reads, writes, hits, misses, total uint64
	start := time.Now()
	deadline := start.Add(*duration)

	for time.Now().Before(deadline) {
		k := "k:" + strconv.FormatUint(zipf.Uint64(), 10)
		total++
		if int(r.Int31n(100)) < *readPct {
			reads++
			if _, ok := c.Get(k); ok {
				hits++
			} else {
				misses++
			}
		} else {
			writes++
			c.Set(k, "v")
		}
	}
	elapsed := time.Since(start)

	// ---- Report ----
	opsPerSec := float64(total) / elapsed.Seconds()
	hitRate := 0.0
	if reads > 0 {
		hitRate = 100 * float64(hits) / float64(reads)
	}
	fmt.Printf("ops: %d (%.0f op/s) over %s\n", total, opsPerSec, elapsed.Round(time.Millisecond))
	fmt.Printf("reads: %d (hit %.1f%%, misses %d), writes: %d\n", reads, hitRate, misses, writes)
	fmt.Printf("resident: %d / %d\n", c.Len(), c.Cap())
}
