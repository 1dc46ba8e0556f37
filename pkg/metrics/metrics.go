package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultSkipped = "skipped" // ошибка проглочена политикой best effort
)

// Metrics метрики сервиса уведомлений.
// Все методы безопасны для nil-получателя, чтобы компоненты работали с выключенными метриками
type Metrics struct {
	telegramRequests *prometheus.CounterVec
	telegramDuration *prometheus.HistogramVec
	notifications    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New создаёт метрики и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry создаёт метрики и регистрирует их в указанном реестре
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		telegramRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "telegram_requests_total",
				Help:        "Telegram Bot API calls by bot, method and status.",
				ConstLabels: constLabels,
			},
			[]string{"bot", "method", "status"},
		),
		telegramDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "telegram_request_duration_seconds",
				Help:        "Telegram Bot API call latency.",
				ConstLabels: constLabels,
				Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"bot", "method"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "notifications_total",
				Help:        "Business notifications by bot, kind and result.",
				ConstLabels: constLabels,
			},
			[]string{"bot", "kind", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "HTTP requests by method, route and status code.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	reg.MustRegister(
		m.telegramRequests,
		m.telegramDuration,
		m.notifications,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// ObserveTelegramRequest учитывает один вызов Telegram Bot API
func (m *Metrics) ObserveTelegramRequest(bot, method string, err error, d time.Duration) {
	if m == nil {
		return
	}

	status := "ok"
	if err != nil {
		status = "error"
	}

	m.telegramRequests.WithLabelValues(bot, method, status).Inc()
	m.telegramDuration.WithLabelValues(bot, method).Observe(d.Seconds())
}

// IncNotification учитывает результат бизнес-уведомления
func (m *Metrics) IncNotification(bot, kind, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(bot, kind, result).Inc()
}

// ObserveHTTPRequest учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
