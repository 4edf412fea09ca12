package server

import (
	"errors"
	"fmt"
	"net"

	"zappy-server/internal/config"
	"zappy-server/internal/engine"
	"zappy-server/pkg/logger"
)

// Server принимает TCP-соединения AI-клиентов и наблюдателей.
// Опционально поднимает HTTP-мост (WebSocket, health, debug).
type Server struct {
	Engine *engine.GameService
	Cfg    *config.Config

	listener net.Listener
	closed   chan struct{}
}

func New(eng *engine.GameService, cfg *config.Config) *Server {
	return &Server{
		Engine: eng,
		Cfg:    cfg,
		closed: make(chan struct{}),
	}
}

// Run блокируется в цикле accept до вызова Stop
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Cfg.Port))
	if err != nil {
		return fmt.Errorf("server: listen: %w", err)
	}
	s.listener = ln

	logger.Log.Infof("🚀 Zappy Server слушает :%d", s.Cfg.Port)

	if s.Cfg.WSPort != 0 {
		go s.runHTTP()
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-s.closed:
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Log.WithError(err).Warn("Accept failed")
			continue
		}

		go NewClient(s.Engine, conn).Serve()
	}
}

// Stop прекращает прием новых соединений
func (s *Server) Stop() {
	close(s.closed)
	if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			logger.Log.WithError(err).Debug("close listener")
		}
	}
}
