package controller

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbeisheim/rulechess-backend/internal/model"
	"github.com/benbeisheim/rulechess-backend/internal/service"
	"github.com/benbeisheim/rulechess-backend/internal/ws"
)

func newSeatedGame(t *testing.T) (*service.GameService, string) {
	t.Helper()
	gs := service.NewGameService(service.NewGameManager())
	placement := model.NewBoard().
		Place(model.MustParseCoordinate("e1"), model.NewPiece(model.King, model.White)).
		Place(model.MustParseCoordinate("e8"), model.NewPiece(model.King, model.Black)).
		Place(model.MustParseCoordinate("a1"), model.NewPiece(model.Rook, model.White)).
		Place(model.MustParseCoordinate("a3"), model.NewPiece(model.Pawn, model.White))
	id, err := gs.CreateGame(placement)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := gs.JoinGame(id, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	return gs, id
}

func moveMessage(payload string) ws.Message {
	return ws.Message{Type: ws.MessageTypeMove, Payload: json.RawMessage(payload)}
}

func TestHandleMessage(t *testing.T) {
	gs, id := newSeatedGame(t)
	wsc := NewWebSocketController(gs)

	tests := []struct {
		name     string
		player   string
		msg      ws.Message
		wantErr  error
		wantKind string
	}{
		{"blocked", "alice", moveMessage(`{"from":"a1","to":"a5"}`), model.ErrBlockedRoute, "BlockedRoute"},
		{"no piece", "alice", moveMessage(`{"from":"b1","to":"b5"}`), model.ErrNoPieceAtSource, "NoPieceAtSource"},
		{"off board", "alice", moveMessage(`{"from":"a0","to":"a3"}`), model.ErrOutOfBounds, "OutOfBounds"},
		{"unseated", "mallory", moveMessage(`{"from":"a1","to":"b1"}`), service.ErrNotSeated, ""},
		{"legal", "alice", moveMessage(`{"from":"a1","to":"b1"}`), nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wsc.handleMessage(id, tt.player, tt.msg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("handleMessage() = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				if kind := model.ErrorKind(err); kind != tt.wantKind {
					t.Fatalf("kind = %q, want %q", kind, tt.wantKind)
				}
			}
		})
	}

	state, _ := gs.GetGameState(id)
	if len(state.MoveHistory) != 1 {
		t.Fatalf("history = %+v, want only the legal move", state.MoveHistory)
	}
}

func TestHandleMessageRejectsUnknownType(t *testing.T) {
	gs, id := newSeatedGame(t)
	wsc := NewWebSocketController(gs)

	if err := wsc.handleMessage(id, "alice", ws.Message{Type: "resign"}); err == nil {
		t.Fatal("expected error for unknown message type")
	}
	if err := wsc.handleMessage(id, "alice", moveMessage(`{"from":`)); err == nil {
		t.Fatal("expected error for malformed move payload")
	}
}

func TestErrorMessageCarriesKind(t *testing.T) {
	gs, id := newSeatedGame(t)
	wsc := NewWebSocketController(gs)

	err := wsc.handleMessage(id, "alice", moveMessage(`{"from":"a1","to":"a3"}`))
	msg := ws.NewErrorMessage(err.Error(), model.ErrorKind(err))
	if msg.Type != ws.MessageTypeError {
		t.Fatalf("type = %s", msg.Type)
	}
	var payload ws.ErrorPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload.Kind != "FriendlyCapture" || payload.Error == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

// overlapConn fails the test if two writes are ever in flight at once.
type overlapConn struct {
	t       *testing.T
	active  int32
	written int32
}

func (c *overlapConn) WriteJSON(v interface{}) error {
	if atomic.AddInt32(&c.active, 1) != 1 {
		c.t.Error("concurrent write on connection")
	}
	time.Sleep(time.Millisecond)
	atomic.AddInt32(&c.written, 1)
	atomic.AddInt32(&c.active, -1)
	return nil
}

func TestLockedConnSerializesWrites(t *testing.T) {
	raw := &overlapConn{t: t}
	conn := &lockedConn{conn: raw}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn.WriteJSON(ws.NewErrorMessage("busy", ""))
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&raw.written); got != 8 {
		t.Fatalf("written = %d, want 8", got)
	}
}
