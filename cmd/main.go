package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/health"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_accreditation"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_chat_message"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_profile"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_project_approval"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_receipt"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/notify_scenario"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/send_message"
	"github.com/get2b/Get2B-NotificationService/internal/api/handlers/telegram_webhook"
	"github.com/get2b/Get2B-NotificationService/internal/api/middleware"
	"github.com/get2b/Get2B-NotificationService/internal/config"
	"github.com/get2b/Get2B-NotificationService/internal/service/bots"
	"github.com/get2b/Get2B-NotificationService/internal/service/chatbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/managerbot"
	"github.com/get2b/Get2B-NotificationService/internal/service/telegram"
	"github.com/get2b/Get2B-NotificationService/internal/usecase/handle_update"
	"github.com/get2b/Get2B-NotificationService/pkg/logger"
	"github.com/get2b/Get2B-NotificationService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Get2B-NotificationService...")

	// Инициализируем метрики (если включены). Nil-коллектор безопасен для всех компонентов
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Реестр ботов. Боты создаются при первом обращении, сеть при старте не используется
	factory := bots.TelegramFactory(
		telegram.WithTimeout(cfg.Telegram.Timeout()),
		telegram.WithAPIEndpoint(cfg.Telegram.APIEndpoint),
		telegram.WithMetrics(metricsCollector),
	)
	registry := bots.NewRegistry(bots.Settings{
		Manager: managerbot.Config{
			Token:   cfg.Telegram.ManagerBot.Token,
			ChatID:  cfg.Telegram.ManagerBot.ChatID,
			BaseURL: cfg.Telegram.BaseURL,
		},
		Chat: chatbot.Config{
			Token:  cfg.Telegram.ChatBot.Token,
			ChatID: cfg.Telegram.ChatBot.ChatID,
		},
	}, factory, log, metricsCollector)

	for name, ok := range registry.Configured() {
		if !ok {
			log.Warn("Bot %s is not configured, its notifications will fail", name)
		}
	}

	// Use cases обработки webhook
	managerUpdates := handle_update.New(provide[handle_update.Bot](registry.Manager), log.With("bot", managerbot.Name))
	chatUpdates := handle_update.New(provide[handle_update.Bot](registry.Chat), log.With("bot", chatbot.Name))

	// Инициализируем handlers
	healthHandler := health.NewHandler(registry)
	receiptHandler := notify_receipt.NewHandler(provide[notify_receipt.ManagerBot](registry.Manager), log)
	projectApprovalHandler := notify_project_approval.NewHandler(provide[notify_project_approval.ManagerBot](registry.Manager), log)
	accreditationHandler := notify_accreditation.NewHandler(provide[notify_accreditation.ManagerBot](registry.Manager), log)
	profileHandler := notify_profile.NewHandler(provide[notify_profile.ManagerBot](registry.Manager), log)
	chatMessageHandler := notify_chat_message.NewHandler(provide[notify_chat_message.ChatBot](registry.Chat), log)
	scenarioHandler := notify_scenario.NewHandler(registry.Scenario(), log)
	sendMessageHandler := send_message.NewHandler(
		provide[send_message.ManagerBot](registry.Manager),
		provide[send_message.ChatBot](registry.Chat),
		log,
	)
	managerWebhook := telegram_webhook.NewHandler(managerbot.Name, managerUpdates, cfg.Telegram.WebhookSecret, log)
	chatWebhook := telegram_webhook.NewHandler(chatbot.Name, chatUpdates, cfg.Telegram.WebhookSecret, log)

	if cfg.Telegram.WebhookSecret == "" {
		log.Warn("Telegram webhook secret is not set, webhook calls are not authenticated")
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(), middleware.RequestLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Публичные endpoints
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)
	r.HandleFunc("/webhook/telegram/manager", managerWebhook.Handle).Methods(http.MethodPost)
	r.HandleFunc("/webhook/telegram/chat", chatWebhook.Handle).Methods(http.MethodPost)

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API v1 endpoints
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/messages", sendMessageHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/receipts", receiptHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/project-approvals", projectApprovalHandler.HandleProject).Methods(http.MethodPost)
	api.HandleFunc("/notifications/atomic-approvals", projectApprovalHandler.HandleAtomic).Methods(http.MethodPost)
	api.HandleFunc("/notifications/accreditations", accreditationHandler.HandleRequest).Methods(http.MethodPost)
	api.HandleFunc("/notifications/accreditation-decisions", accreditationHandler.HandleDecision).Methods(http.MethodPost)
	api.HandleFunc("/notifications/profiles", profileHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/chat-messages", chatMessageHandler.HandleMessage).Methods(http.MethodPost)
	api.HandleFunc("/notifications/project-details", chatMessageHandler.HandleProjectDetails).Methods(http.MethodPost)
	api.HandleFunc("/notifications/scenarios", scenarioHandler.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// provide приводит ленивый конструктор бота к интерфейсу, который объявил потребитель.
// При ошибке возвращается нулевой интерфейс, а не обёрнутый nil-указатель
func provide[T any, S any](get func() (S, error)) func() (T, error) {
	return func() (T, error) {
		var zero T
		bot, err := get()
		if err != nil {
			return zero, err
		}
		typed, ok := any(bot).(T)
		if !ok {
			return zero, fmt.Errorf("bot %T does not implement %T", bot, (*T)(nil))
		}
		return typed, nil
	}
}
