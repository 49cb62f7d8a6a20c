package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

// Collector gathers the Prometheus metrics the site exposes. A nil
// *Collector is valid and records nothing, so code paths shared with
// tests never have to check.
type Collector struct {
	pageRenders     prometheus.Counter
	collectionLoads *prometheus.CounterVec
	contactMessages *prometheus.CounterVec
}

func newCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		pageRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_page_renders_total",
			Help: "Total number of full page renders.",
		}),
		collectionLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_collection_loads_total",
			Help: "Collection load attempts by collection name and outcome.",
		}, []string{"collection", "outcome"}),
		contactMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_messages_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(c.pageRenders, c.collectionLoads, c.contactMessages)
	return c
}

func (c *Collector) recordPageRender() {
	if c == nil {
		return
	}
	c.pageRenders.Inc()
}

func (c *Collector) recordCollectionLoad(name, outcome string) {
	if c == nil {
		return
	}
	c.collectionLoads.WithLabelValues(name, outcome).Inc()
}

func (c *Collector) recordContactMessage(outcome string) {
	if c == nil {
		return
	}
	c.contactMessages.WithLabelValues(outcome).Inc()
}

// metrics is the process-wide collector, set up in main.
var metrics *Collector

func registerMetricsRoute(r *gin.Engine, reg *prometheus.Registry) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
}
