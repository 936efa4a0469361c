package control

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frudas24/rzctl/internal/pointer"
	"github.com/frudas24/rzctl/internal/session"
	"github.com/frudas24/rzctl/internal/testutil"
	"github.com/gorilla/websocket"
)

// newTestServer returns a server driving a fake cursor at (500,500).
func newTestServer(t *testing.T) (*Server, *testutil.FakeDriver, *session.Session) {
	t.Helper()
	drv := testutil.NewFakeDriver(500, 500)
	opts := pointer.DefaultOptions()
	opts.Pause = 0
	opts.ClickSettle = 0
	opts.Sleeper = &testutil.FakeSleeper{}
	ctrl := pointer.New(drv, opts)
	if !ctrl.Init() {
		t.Fatalf("init failed")
	}
	sess := session.New("secret")
	return NewServer(sess, ctrl), drv, sess
}

// intp returns a pointer to v.
func intp(v int) *int {
	return &v
}

// TestHandleMessage_MoveTo verifies an absolute move lands and reports the position.
func TestHandleMessage_MoveTo(t *testing.T) {
	server, drv, sess := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeMoveTo, ID: 7, X: intp(100), Y: intp(200)})
	if !reply.OK || reply.ID != 7 || reply.X != 100 || reply.Y != 200 {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if moves := drv.Named("MoveAbs"); len(moves) != 1 {
		t.Fatalf("expected one instant move, got %#v", moves)
	}
	if sess.Snapshot().Actions != 1 {
		t.Fatalf("expected action to be recorded")
	}
}

// TestHandleMessage_MoveToKeepsMissingAxis verifies a missing coordinate keeps the cursor value.
func TestHandleMessage_MoveToKeepsMissingAxis(t *testing.T) {
	server, _, _ := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeMoveTo, X: intp(10)})
	if !reply.OK || reply.X != 10 || reply.Y != 500 {
		t.Fatalf("unexpected reply %+v", reply)
	}
}

// TestHandleMessage_MoveRelative verifies an unchanged x axis with a y offset.
func TestHandleMessage_MoveRelative(t *testing.T) {
	server, _, _ := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeMove, DY: intp(10)})
	if !reply.OK || reply.X != 500 || reply.Y != 510 {
		t.Fatalf("expected (500,510), got %+v", reply)
	}
}

// TestHandleMessage_DragTo verifies the drag press/release sequence.
func TestHandleMessage_DragTo(t *testing.T) {
	server, drv, _ := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeDragTo, X: intp(1080), Y: intp(500), DurationMs: 1000})
	if !reply.OK {
		t.Fatalf("unexpected reply %+v", reply)
	}
	calls := drv.Named("Press", "Release")
	if len(calls) != 2 || calls[0].Name != "Press" || calls[0].X != 500 || calls[1].X != 1080 {
		t.Fatalf("unexpected button calls %#v", calls)
	}
}

// TestHandleMessage_ClickButton verifies button and clicks options reach the driver.
func TestHandleMessage_ClickButton(t *testing.T) {
	server, drv, _ := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeClick, X: intp(30), Y: intp(40), Button: "right", Clicks: 2})
	if !reply.OK {
		t.Fatalf("unexpected reply %+v", reply)
	}
	presses := drv.Named("Press")
	if len(presses) != 2 || presses[0].Button != "right" || presses[0].X != 30 || presses[0].Y != 40 {
		t.Fatalf("unexpected presses %#v", presses)
	}
}

// TestHandleMessage_DownUp verifies manual press and release.
func TestHandleMessage_DownUp(t *testing.T) {
	server, drv, _ := newTestServer(t)
	if reply := server.handleMessage(Message{T: TypeDown}); !reply.OK {
		t.Fatalf("down failed: %+v", reply)
	}
	if reply := server.handleMessage(Message{T: TypeUp, X: intp(5), Y: intp(6)}); !reply.OK {
		t.Fatalf("up failed: %+v", reply)
	}
	calls := drv.Named("Press", "Release")
	if len(calls) != 2 || calls[0].X != 500 || calls[1].X != 5 {
		t.Fatalf("unexpected calls %#v", calls)
	}
}

// TestHandleMessage_InputDisabled verifies actions are refused while the kill switch is off.
func TestHandleMessage_InputDisabled(t *testing.T) {
	server, drv, _ := newTestServer(t)
	off := false
	if reply := server.handleMessage(Message{T: TypeInputEnabled, Enabled: &off}); !reply.OK {
		t.Fatalf("toggle failed: %+v", reply)
	}
	before := len(drv.Recorded())
	reply := server.handleMessage(Message{T: TypeMoveTo, X: intp(1), Y: intp(1)})
	if reply.OK || reply.Error != ErrInputDisabled.Error() {
		t.Fatalf("expected input disabled, got %+v", reply)
	}
	if len(drv.Recorded()) != before {
		t.Fatalf("expected no driver calls")
	}
	if reply := server.handleMessage(Message{T: TypePosition}); !reply.OK || reply.X != 500 {
		t.Fatalf("expected queries to keep working, got %+v", reply)
	}
}

// TestHandleMessage_Errors verifies invalid messages produce error replies.
func TestHandleMessage_Errors(t *testing.T) {
	server, _, _ := newTestServer(t)
	cases := []Message{
		{T: "scroll"},
		{T: TypeInputEnabled},
		{T: TypeClick, Clicks: -1},
		{T: TypeMoveTo, X: intp(1), Y: intp(1), DurationMs: -5},
		{T: TypeClick, Tween: "wobble"},
	}
	for _, msg := range cases {
		if reply := server.handleMessage(msg); reply.OK || reply.Error == "" {
			t.Fatalf("expected error for %+v, got %+v", msg, reply)
		}
	}
}

// TestHandleMessage_Size verifies the size reply.
func TestHandleMessage_Size(t *testing.T) {
	server, _, _ := newTestServer(t)
	reply := server.handleMessage(Message{T: TypeSize})
	if !reply.OK || reply.W != 1920 || reply.H != 1080 {
		t.Fatalf("unexpected reply %+v", reply)
	}
}

// wsURL converts an httptest URL to a websocket URL.
func wsURL(srv *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/?token=" + token
}

// TestServeHTTP_Unauthorized verifies a bad token is refused before upgrade.
func TestServeHTTP_Unauthorized(t *testing.T) {
	server, _, _ := newTestServer(t)
	srv := httptest.NewServer(server)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "nope"), nil)
	if err == nil {
		t.Fatalf("expected dial to fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}
}

// TestServeHTTP_RoundTrip verifies a message and reply over a real websocket.
func TestServeHTTP_RoundTrip(t *testing.T) {
	server, drv, sess := newTestServer(t)
	srv := httptest.NewServer(server)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "secret"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Message{T: TypeMove, ID: 3, DX: intp(-20), DY: intp(5)}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var reply Reply
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !reply.OK || reply.ID != 3 || reply.X != 480 || reply.Y != 505 {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if moves := drv.Named("MoveAbs"); len(moves) != 1 {
		t.Fatalf("expected one move, got %#v", moves)
	}
	if !sess.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
}

// TestServeHTTP_SingleConnection verifies a second client is turned away.
func TestServeHTTP_SingleConnection(t *testing.T) {
	server, _, _ := newTestServer(t)
	srv := httptest.NewServer(server)
	defer srv.Close()

	first, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "secret"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer first.Close()
	if err := first.WriteJSON(Message{T: TypePosition}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var reply Reply
	if err := first.ReadJSON(&reply); err != nil || !reply.OK {
		t.Fatalf("first client failed: %+v err=%v", reply, err)
	}

	second, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "secret"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer second.Close()
	_, _, err = second.ReadMessage()
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected policy close, got %v", err)
	}
}

// TestServeHTTP_RejectedDialKeepsSession verifies refused dials leave the active client's session intact.
func TestServeHTTP_RejectedDialKeepsSession(t *testing.T) {
	server, _, sess := newTestServer(t)
	srv := httptest.NewServer(server)
	defer srv.Close()

	first, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "secret"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer first.Close()
	if err := first.WriteJSON(Message{T: TypePosition}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var reply Reply
	if err := first.ReadJSON(&reply); err != nil || !reply.OK {
		t.Fatalf("first client failed: %+v err=%v", reply, err)
	}
	before := sess.Snapshot()
	if !before.Authenticated || before.Client == "" {
		t.Fatalf("expected authenticated client, got %+v", before)
	}

	if _, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "wrong"), nil); err == nil || resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got resp=%+v err=%v", resp, err)
	}
	second, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "secret"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer second.Close()
	if _, _, err := second.ReadMessage(); !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected policy close, got %v", err)
	}

	after := sess.Snapshot()
	if !after.Authenticated || after.Client != before.Client {
		t.Fatalf("expected session %+v to be unchanged, got %+v", before, after)
	}
}
