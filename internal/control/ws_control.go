package control

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/frudas24/rzctl/internal/driver"
	"github.com/frudas24/rzctl/internal/pointer"
	"github.com/frudas24/rzctl/internal/session"
	"github.com/gorilla/websocket"
)

// ErrInputDisabled is reported for actions received while input is disabled.
var ErrInputDisabled = errors.New("input disabled")

// Mouse is the subset of pointer.Controller driven by the server.
type Mouse interface {
	MoveTo(x, y int, duration time.Duration, opts ...pointer.Option) error
	Move(dx, dy pointer.Axis, duration time.Duration, opts ...pointer.Option) error
	DragTo(x, y int, duration time.Duration, opts ...pointer.Option) error
	Drag(dx, dy pointer.Axis, duration time.Duration, opts ...pointer.Option) error
	Click(at pointer.Target, opts ...pointer.Option) error
	MouseDown(at pointer.Target, opts ...pointer.Option) error
	MouseUp(at pointer.Target, opts ...pointer.Option) error
	Position() (driver.Point, error)
	Size() (driver.Size, error)
}

// Server handles websocket control input.
type Server struct {
	mu       sync.Mutex
	actionMu sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	mouse    Mouse
	now      func() time.Time
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, mouse Mouse) *Server {
	return &Server{
		session: sess,
		mouse:   mouse,
		now:     time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// RequestToken extracts the control token from the Authorization header or the token query parameter.
func RequestToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return r.URL.Query().Get("token")
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := RequestToken(r)
	if !s.session.Check(token) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		log.Printf("control: rejecting %s: %v", r.RemoteAddr, err)
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		_ = conn.Close()
		return
	}
	s.session.Authenticate(token)
	s.session.SetClient(r.RemoteAddr)
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := conn.WriteJSON(s.handleMessage(msg)); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	s.session.Logout()
	_ = conn.Close()
}

// handleMessage dispatches a single control message and builds its reply.
func (s *Server) handleMessage(msg Message) Reply {
	s.actionMu.Lock()
	defer s.actionMu.Unlock()

	reply := Reply{T: msg.T, ID: msg.ID}
	var err error
	switch msg.T {
	case TypePosition:
		err = s.fillPosition(&reply)
	case TypeSize:
		var size driver.Size
		if size, err = s.mouse.Size(); err == nil {
			reply.W, reply.H = size.Width, size.Height
		}
	case TypeInputEnabled:
		if msg.Enabled == nil {
			err = fmt.Errorf("inputEnabled requires enabled")
			break
		}
		s.session.SetInputEnabled(*msg.Enabled)
	case TypeMoveTo, TypeMove, TypeDragTo, TypeDrag, TypeClick, TypeDown, TypeUp:
		if !s.session.InputEnabled() {
			err = ErrInputDisabled
			break
		}
		if err = s.runAction(msg); err == nil {
			s.session.RecordAction(s.now())
			err = s.fillPosition(&reply)
		}
	default:
		err = fmt.Errorf("unknown message type %q", msg.T)
	}

	if err != nil {
		reply.Error = err.Error()
		if !errors.Is(err, ErrInputDisabled) {
			log.Printf("control: %s failed: %v", msg.T, err)
		}
		return reply
	}
	reply.OK = true
	return reply
}

// runAction executes a pointer action message.
func (s *Server) runAction(msg Message) error {
	duration, err := msg.duration()
	if err != nil {
		return err
	}
	opts, err := msg.options()
	if err != nil {
		return err
	}

	switch msg.T {
	case TypeMoveTo, TypeDragTo:
		x, y, err := s.absolute(msg)
		if err != nil {
			return err
		}
		if msg.T == TypeDragTo {
			return s.mouse.DragTo(x, y, duration, opts...)
		}
		return s.mouse.MoveTo(x, y, duration, opts...)
	case TypeMove:
		dx, dy := msg.axes()
		return s.mouse.Move(dx, dy, duration, opts...)
	case TypeDrag:
		dx, dy := msg.axes()
		return s.mouse.Drag(dx, dy, duration, opts...)
	}

	at := pointer.Here()
	if msg.hasPoint() {
		x, y, err := s.absolute(msg)
		if err != nil {
			return err
		}
		at = pointer.At(x, y)
	}
	switch msg.T {
	case TypeClick:
		return s.mouse.Click(at, append(opts, pointer.WithDuration(duration))...)
	case TypeDown:
		return s.mouse.MouseDown(at, append(opts, pointer.WithDuration(duration))...)
	default:
		return s.mouse.MouseUp(at, append(opts, pointer.WithDuration(duration))...)
	}
}

// absolute fills missing coordinates from the current cursor position.
func (s *Server) absolute(msg Message) (int, int, error) {
	if msg.X != nil && msg.Y != nil {
		return *msg.X, *msg.Y, nil
	}
	pos, err := s.mouse.Position()
	if err != nil {
		return 0, 0, err
	}
	return valueOr(msg.X, pos.X), valueOr(msg.Y, pos.Y), nil
}

// fillPosition copies the cursor position into reply.
func (s *Server) fillPosition(reply *Reply) error {
	pos, err := s.mouse.Position()
	if err != nil {
		return err
	}
	reply.X, reply.Y = pos.X, pos.Y
	return nil
}
