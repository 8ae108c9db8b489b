package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DownloadRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scraper_download_requests_total",
		Help: "The total number of download requests by platform and outcome",
	}, []string{"platform", "status"})

	MediaDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scraper_media_delivered_total",
		Help: "The total number of media items delivered by type",
	}, []string{"type"})

	QuotaRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scraper_quota_rejections_total",
		Help: "The total number of requests rejected by the daily quota",
	})

	MediaFetchBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scraper_media_fetch_bytes",
		Help:    "Size of downloaded media files in bytes",
		Buckets: prometheus.ExponentialBuckets(64*1024, 4, 10),
	})

	UpstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scraper_upstream_request_duration_seconds",
		Help:    "Duration of downloader API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"platform"})
)
