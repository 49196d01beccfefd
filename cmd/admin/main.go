// cmd/admin runs the internal ops surface: health, cache flush, and
// restriction lifecycle refresh. Kept off the public API port.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/stayview/revgrid/backend-go/internal/cache"
	"github.com/stayview/revgrid/backend-go/internal/clock"
	"github.com/stayview/revgrid/backend-go/internal/config"
	"github.com/stayview/revgrid/backend-go/internal/repository"
	"github.com/stayview/revgrid/backend-go/internal/repository/postgres"
	"github.com/stayview/revgrid/backend-go/internal/service"
)

func main() {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	cfg := config.Load()
	clk := clock.NewSystem()

	var restrictionRepo repository.RestrictionRepository
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		restrictionRepo = postgres.NewRestrictionRepository(db)
	} else {
		restrictionRepo = repository.NewSampleRepository(clk.Now())
	}

	restrictionService := service.NewRestrictionService(restrictionRepo, clk)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := restrictionService.Load(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to load restriction catalog: %v", err)
	}
	cancel()

	var statusCache cache.StatusCache
	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisStatusCache(cfg.Cache)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		statusCache = redisCache
	} else {
		// Without a shared backend there is nothing to flush from here.
		statusCache = cache.NewNoopStatusCache()
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	r.HandleFunc("/cache/flush", func(w http.ResponseWriter, req *http.Request) {
		if err := statusCache.Flush(req.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"status": "flushed"})
	}).Methods("POST")

	r.HandleFunc("/restrictions/refresh", func(w http.ResponseWriter, req *http.Request) {
		changed := restrictionService.Refresh(req.Context())
		writeJSON(w, map[string]int{"transitions": changed})
	}).Methods("POST")

	addr := fmt.Sprintf(":%s", cfg.Server.AdminPort)
	log.Printf("Admin server starting on %s\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
