package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"zappy-server/internal/version"
	"zappy-server/pkg/logger"
)

// runHTTP поднимает мост для браузерных наблюдателей и отладки:
// /ws - тот же построчный протокол поверх WebSocket,
// /health, /version, /debug/state - служебные эндпоинты
func (s *Server) runHTTP() {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/debug/state", enableCORS(s.handleDebugState))

	addr := fmt.Sprintf(":%d", s.Cfg.WSPort)
	logger.Log.Infof("🌐 HTTP/WebSocket-мост на %s", addr)

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Log.WithError(err).Error("HTTP-мост остановлен")
	}
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Log.WithError(err).Debug("health write")
	}
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Debug("version encode")
	}
}

// handleDebugState отдает консистентный срез мира из цикла движка
func (s *Server) handleDebugState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Engine.Snapshot()); err != nil {
		logger.Log.WithError(err).Debug("snapshot encode")
	}
}
