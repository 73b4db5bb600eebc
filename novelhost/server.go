package novelhost

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/reusee/novel/logs"
	"github.com/reusee/novel/nets"
	"github.com/reusee/novel/novelvm"
	"github.com/reusee/novel/syncs"
)

var ErrUnknownOp = errors.New("unknown op")

// Server hosts one engine per websocket connection.
type Server struct {
	Logger       logs.Logger
	NewEngine    novelvm.NewEngineFunc
	NewSpan      logs.NewSpan
	IsLocalAddr  nets.IsLocalAddr
	AllowRemote  bool
	Sessions     syncs.Semaphore
	StepsPerTick int
	TickInterval time.Duration
}

var _ http.Handler = new(Server)

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.AllowRemote {
		local, err := s.IsLocalAddr(r.RemoteAddr)
		if err != nil || !local {
			s.Logger.Warn("reject remote peer", "addr", r.RemoteAddr)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	if !s.Sessions.TryAcquire() {
		s.Logger.Warn("session limit reached", "addr", r.RemoteAddr, "sessions", s.Sessions.InUse())
		http.Error(w, "too many sessions", http.StatusServiceUnavailable)
		return
	}
	defer s.Sessions.Release()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied
		s.Logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	ctx, _ := s.NewSpan(context.Background(), "session")
	s.Logger.InfoContext(ctx, "session start",
		"addr", r.RemoteAddr,
		"sessions", s.Sessions.InUse(),
	)
	if err := s.serve(ctx, conn); err != nil {
		s.Logger.WarnContext(ctx, "session end", "error", err)
	} else {
		s.Logger.InfoContext(ctx, "session end")
	}
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if s.AllowRemote {
		return true
	}
	// browsers on other sites must not drive a local engine
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func (s *Server) serve(ctx context.Context, conn *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	engine := s.NewEngine()
	engine.Logger = engine.Logger.With("span", logs.SpanOf(ctx))
	scheduler := &Scheduler{
		Engine:       engine,
		StepsPerTick: s.StepsPerTick,
		TickInterval: s.TickInterval,
	}

	// the reader only decodes, the engine stays on this goroutine
	messages := make(chan Message)
	readErr := make(chan error, 1)
	go func() {
		defer close(messages)
		for {
			var msg Message
			if err := conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			select {
			case messages <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	var cursor outputCursor
	push := func(status Status) error {
		cursor.advance(engine, &status)
		if err := conn.WriteJSON(status); err != nil {
			return logs.WrapSpan(ctx, wrap(err))
		}
		return nil
	}

	if err := push(StatusOf(engine)); err != nil {
		return err
	}

	interval := scheduler.TickInterval
	if interval <= 0 {
		interval = time.Millisecond * 16
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {

		case msg, ok := <-messages:
			if !ok {
				err := <-readErr
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil
				}
				return logs.WrapSpan(ctx, wrap(err))
			}
			err := s.handle(engine, msg)
			status := StatusOf(engine)
			if err != nil {
				status.Error = err.Error()
			}
			if err := push(status); err != nil {
				return err
			}

		case <-ticker.C:
			if scheduler.Tick() == 0 {
				continue
			}
			if err := push(StatusOf(engine)); err != nil {
				return err
			}

		case <-ctx.Done():
			return ctx.Err()

		}
	}
}

func (s *Server) handle(engine *novelvm.Engine, msg Message) error {
	s.Logger.Debug("message", "op", msg.Op)
	switch msg.Op {

	case OpPopulate:
		engine.Populate(msg.Lines)
		return nil

	case OpBuild:
		return engine.Build()

	case OpStart:
		return engine.Start()

	case OpStep:
		return engine.Step()

	case OpKey:
		if msg.Key == nil {
			return fmt.Errorf("%s: missing key", msg.Op)
		}
		_, err := Feed(engine, *msg.Key)
		return err

	case OpSubmit:
		if msg.Text != nil {
			return engine.SubmitInput(*msg.Text)
		}
		return engine.Submit()

	case OpReset:
		return engine.Reset()

	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, msg.Op)
}

// outputCursor tracks how much of the engine output a client already holds,
// so a long running program is not resent in full on every tick.
type outputCursor struct {
	builds int
	sent   int
}

func (c *outputCursor) advance(e *novelvm.Engine, status *Status) {
	if builds := e.Builds(); builds != c.builds {
		c.builds = builds
		c.sent = 0
	}
	output := status.Output
	c.sent = min(c.sent, len(output))
	status.OutputFrom = c.sent
	status.Output = output[c.sent:]
	c.sent = len(output)
}
