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

	getAvailableRoomsHandler "github.com/m04kA/HMS-PlanningService/internal/api/handlers/get_available_rooms"
	getOccupancyGridHandler "github.com/m04kA/HMS-PlanningService/internal/api/handlers/get_occupancy_grid"
	quoteStayHandler "github.com/m04kA/HMS-PlanningService/internal/api/handlers/quote_stay"
	"github.com/m04kA/HMS-PlanningService/internal/api/middleware"
	"github.com/m04kA/HMS-PlanningService/internal/config"
	hotelCoreClient "github.com/m04kA/HMS-PlanningService/internal/integrations/hotelcore"
	"github.com/m04kA/HMS-PlanningService/internal/stay"
	getAvailableRoomsUC "github.com/m04kA/HMS-PlanningService/internal/usecase/get_available_rooms"
	getOccupancyGridUC "github.com/m04kA/HMS-PlanningService/internal/usecase/get_occupancy_grid"
	quoteStayUC "github.com/m04kA/HMS-PlanningService/internal/usecase/quote_stay"
	"github.com/m04kA/HMS-PlanningService/pkg/calendar"
	"github.com/m04kA/HMS-PlanningService/pkg/clientmetrics"
	"github.com/m04kA/HMS-PlanningService/pkg/logger"
	"github.com/m04kA/HMS-PlanningService/pkg/metrics"
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

	log.Info("Starting HMS-PlanningService...")
	log.Info("Configuration loaded from config.toml")

	// Единый календарь отеля: все границы дат (ось дашборда, пересечения
	// броней, подсветка "сегодня") считаются в одной таймзоне
	cal, err := calendar.New(cfg.Planner.Timezone)
	if err != nil {
		log.Fatal("Failed to initialize calendar: %v", err)
	}
	log.Info("Calendar initialized (timezone=%s)", cfg.Planner.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var clientTransport http.RoundTripper

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		clientTransport = clientmetrics.Wrap(nil, metricsCollector)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент бэкенда отельной системы
	hotelClient := hotelCoreClient.NewClient(
		cfg.HotelCore.URL,
		time.Duration(cfg.HotelCore.Timeout)*time.Second,
		clientTransport,
		log,
	)
	log.Info("HotelCore client initialized (url=%s, timeout=%ds)",
		cfg.HotelCore.URL, cfg.HotelCore.Timeout)

	// Калькулятор проживания поверх общего календаря
	stayCalc := stay.NewCalculator(cal)

	// Инициализируем use cases
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(hotelClient, cal, log)
	quoteStayUseCase := quoteStayUC.NewUseCase(hotelClient, stayCalc, log)
	getOccupancyGridUseCase := getOccupancyGridUC.NewUseCase(
		hotelClient,
		cal,
		cfg.Planner.AxisDaysBefore,
		cfg.Planner.AxisLength,
		log,
	)

	// Инициализируем handlers
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, log)
	quoteStay := quoteStayHandler.NewHandler(quoteStayUseCase, log)
	getOccupancyGrid := getOccupancyGridHandler.NewHandler(getOccupancyGridUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все операции планировщика требуют сессию оператора (Bearer token)
	api.Use(middleware.Auth)

	// Сетка занятости комнат для дашборда
	api.HandleFunc("/occupancy-grid", getOccupancyGrid.Handle).Methods(http.MethodGet)

	// Свободные комнаты на диапазон дат
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Расчет проживания: ночи, дата выезда, итоговая стоимость
	api.HandleFunc("/stay-quotes", quoteStay.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
