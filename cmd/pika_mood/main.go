package main

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"pika_mood/internal/cache"
	"pika_mood/internal/config"
	"pika_mood/internal/handlers"
	"pika_mood/internal/logger"
	"pika_mood/internal/storage"
	"pika_mood/internal/usecases"
)

func main() {
	cfg := config.New()

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("unable to connect to db", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("unable to ping db", "error", err)
	}
	log.Info("connected to db successfully")

	moodStorage := storage.NewMoodStorage(pool)
	pairStorage := storage.NewPairStorage(pool)
	if err := moodStorage.Init(ctx); err != nil {
		log.Fatal("failed to init mood storage", "error", err)
	}
	if err := pairStorage.Init(ctx); err != nil {
		log.Fatal("failed to init pair storage", "error", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	var snapshots *cache.SnapshotCache
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, couple snapshots disabled", "error", err)
	} else {
		snapshots = cache.NewSnapshotCache(rdb, time.Duration(cfg.CacheTTLSecs)*time.Second, log)
	}

	reports := usecases.NewReportService(moodStorage, snapshots, log)

	moodHandler := handlers.NewMoodHandler(moodStorage, snapshots, log)
	analyticsHandler := handlers.NewAnalyticsHandler(reports, pairStorage, log)
	pairHandler := handlers.NewPairHandler(pairStorage, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", handlers.HandleHealth)
	mux.HandleFunc("/moods", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			moodHandler.HandleSaveMood(w, r)
			return
		}
		moodHandler.HandleGetMoods(w, r)
	})
	mux.HandleFunc("/pair", pairHandler.HandleSaveLink)
	mux.HandleFunc("/analytics/summary", analyticsHandler.HandleSelfSummary)
	mux.HandleFunc("/analytics/couple", analyticsHandler.HandleCoupleReport)

	log.Info("listening", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, mux); err != nil {
		log.Fatal("listen and serve failed", "error", err)
	}
}
