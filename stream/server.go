package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tutils/xxrand/counter"
	"github.com/tutils/xxrand/counter/period"
	"github.com/tutils/xxrand/logger"
)

var (
	upgrader = websocket.Upgrader{
		ReadBufferSize:  4 << 10,
		WriteBufferSize: 4 << 10,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

const readTimeout = time.Second * 15
const pingPeriod = time.Second * 10
const writeTimeout = time.Second

// Server serves one lazy sequence per websocket connection
type Server struct {
	opts   ServerOptions
	srv    *http.Server
	served counter.Counter
}

// NewServer create a new Server
func NewServer(opts ...ServerOption) (*Server, error) {
	opt := newServerOptions(opts...)
	u, err := url.Parse(opt.addr)
	if err != nil {
		return nil, fmt.Errorf("parse listen address: %w", err)
	}

	s := &Server{
		opts:   *opt,
		served: period.NewPeriodCounter(opt.reportInterval),
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	s.srv = &http.Server{
		Addr:    u.Host,
		Handler: mux,
	}
	return s, nil
}

// Served returns the number of values sent since start
func (s *Server) Served() int64 {
	return s.served.Value()
}

func (s *Server) ListenAndServe() error {
	logger.Log().Info().Str("addr", s.opts.addr).Msg("stream server listening")
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, err := ParseKind(q.Get("kind"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var offset int64
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.ParseInt(v, 10, 64); err != nil {
			http.Error(w, "bad offset: "+err.Error(), http.StatusBadRequest)
			return
		}
	}
	seed := q.Get("seed")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log().Warn().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}
	defer conn.Close()

	sess := newSession(uuid.New().String(), kind, seed, offset, s.opts.maxBatch)
	log := logger.Log().With().Str("session", sess.id).Str("remote", r.RemoteAddr).Logger()
	log.Info().Str("kind", string(kind)).Int64("offset", offset).Msg("session opened")

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})
	done := make(chan struct{})
	defer close(done)
	go startPing(conn, done)

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			log.Info().Err(err).Msg("session closed")
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		resp, err := sess.pull(req)
		if err != nil {
			resp.Error = err.Error()
		} else {
			s.served.Add(int64(req.N))
		}
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(&resp); err != nil {
			log.Warn().Err(err).Msg("write response")
			return
		}
		log.Debug().Int("n", req.N).Bool("reset", req.Reset).Int64("rate", s.served.IncreaseRatePerSec()).Msg("pulled")
	}
}

func startPing(conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(writeTimeout))
		case <-done:
			return
		}
	}
}
