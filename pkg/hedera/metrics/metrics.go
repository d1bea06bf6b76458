/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	kitmetrics "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hashgraph/hedera-sdk-go/pkg/common/errors/status"
	"github.com/hashgraph/hedera-sdk-go/pkg/common/logging"
)

var logger = logging.NewLogger("hedera/metrics")

// DefaultNamespace is used when no namespace is configured
const DefaultNamespace = "hedera"

// CounterOpts describes a counter
type CounterOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	LabelNames []string
}

// HistogramOpts describes a histogram
type HistogramOpts struct {
	Namespace  string
	Subsystem  string
	Name       string
	Help       string
	Buckets    []float64
	LabelNames []string
}

// Provider creates counters and histograms
type Provider interface {
	NewCounter(opts CounterOpts) kitmetrics.Counter
	NewHistogram(opts HistogramOpts) kitmetrics.Histogram
}

// PrometheusProvider registers every metric it creates with Registerer.
// Clients sharing a Registerer share the collectors of a namespace.
type PrometheusProvider struct {
	Registerer prometheus.Registerer
}

// NewCounter creates and registers a counter vector
func (p *PrometheusProvider) NewCounter(o CounterOpts) kitmetrics.Counter {
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
	}, o.LabelNames)
	if existing, ok := p.register(cv).(*prometheus.CounterVec); ok {
		cv = existing
	}
	return kitprometheus.NewCounter(cv)
}

// NewHistogram creates and registers a histogram vector
func (p *PrometheusProvider) NewHistogram(o HistogramOpts) kitmetrics.Histogram {
	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: o.Namespace,
		Subsystem: o.Subsystem,
		Name:      o.Name,
		Help:      o.Help,
		Buckets:   o.Buckets,
	}, o.LabelNames)
	if existing, ok := p.register(hv).(*prometheus.HistogramVec); ok {
		hv = existing
	}
	return kitprometheus.NewHistogram(hv)
}

// register returns the collector registered for c, which is c itself unless
// an identical collector was registered before
func (p *PrometheusProvider) register(c prometheus.Collector) prometheus.Collector {
	err := p.Registerer.Register(c)
	if err == nil {
		return c
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		return are.ExistingCollector
	}
	logger.Warnf("metric not exported: %s", err)
	return c
}

// DisabledProvider drops all observations
type DisabledProvider struct{}

// NewCounter returns a counter that discards
func (p *DisabledProvider) NewCounter(CounterOpts) kitmetrics.Counter {
	return discard.NewCounter()
}

// NewHistogram returns a histogram that discards
func (p *DisabledProvider) NewHistogram(HistogramOpts) kitmetrics.Histogram {
	return discard.NewHistogram()
}

// ClientMetrics contains the metrics recorded by transactions and queries
type ClientMetrics struct {
	TransactionsReceived kitmetrics.Counter
	TransactionsFailed   kitmetrics.Counter
	TransactionDuration  kitmetrics.Histogram
	QueriesReceived      kitmetrics.Counter
	QueriesFailed        kitmetrics.Counter
	QueryDuration        kitmetrics.Histogram
}

// NewClientMetrics builds a new instance of ClientMetrics
func NewClientMetrics(p Provider, namespace string) *ClientMetrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &ClientMetrics{
		TransactionsReceived: p.NewCounter(CounterOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "transactions_received",
			Help:       "The number of transactions submitted to a node.",
			LabelNames: []string{"kind"},
		}),
		TransactionsFailed: p.NewCounter(CounterOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "transactions_failed",
			Help:       "The number of transactions rejected at precheck or lost in transport.",
			LabelNames: []string{"kind", "fail"},
		}),
		TransactionDuration: p.NewHistogram(HistogramOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "transaction_duration",
			Help:       "The time to submit a transaction and receive its precheck.",
			Buckets:    prometheus.DefBuckets,
			LabelNames: []string{"kind"},
		}),
		QueriesReceived: p.NewCounter(CounterOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "queries_received",
			Help:       "The number of queries sent to a node.",
			LabelNames: []string{"kind", "mode"},
		}),
		QueriesFailed: p.NewCounter(CounterOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "queries_failed",
			Help:       "The number of queries that failed.",
			LabelNames: []string{"kind", "mode", "fail"},
		}),
		QueryDuration: p.NewHistogram(HistogramOpts{
			Namespace:  namespace,
			Subsystem:  "client",
			Name:       "query_duration",
			Help:       "The time to complete a query round trip.",
			Buckets:    prometheus.DefBuckets,
			LabelNames: []string{"kind", "mode"},
		}),
	}
}

// NewDisabledClientMetrics returns metrics that record nothing
func NewDisabledClientMetrics() *ClientMetrics {
	return NewClientMetrics(&DisabledProvider{}, "")
}

// FailureLabel returns the "fail" label value for err: the precheck code
// name for node rejections, "transport" for connection failures and
// "client" for everything else
func FailureLabel(err error) string {
	if code, ok := status.IsPrecheck(err); ok {
		return code.String()
	}
	if status.IsTransport(err) {
		return "transport"
	}
	return "client"
}
