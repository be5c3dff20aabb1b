package platform

import (
	"context"
	"fmt"
	"sync"

	"github.com/automoto/zstrike/shared/messages"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Report types on the wire
const (
	ReportMatchStart  = "match_start"
	ReportScoreUpdate = "score_update"
	ReportMatchEnd    = "match_end"
)

// Report is one JSON text message sent to the platform.
type Report struct {
	Type    string                `json:"type"`
	MatchID string                `json:"match_id"`
	Score   int                   `json:"score"`
	Result  *messages.MatchResult `json:"result,omitempty"`
}

type ConnState int

const (
	StateConnected ConnState = iota
	StateClosed
	StateError
)

// WSReporter sends reports over a websocket connection.
// All shared fields are protected by mu; writes are serialized.
type WSReporter struct {
	mu        sync.Mutex
	state     ConnState
	lastError error
	conn      *websocket.Conn
}

// DialWS connects to a reporting endpoint such as ws://host/reports.
func DialWS(ctx context.Context, url string) (*WSReporter, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &WSReporter{state: StateConnected, conn: conn}, nil
}

func (r *WSReporter) MatchStart(ctx context.Context, matchID string) error {
	return r.send(ctx, Report{Type: ReportMatchStart, MatchID: matchID})
}

func (r *WSReporter) ScoreUpdate(ctx context.Context, matchID string, score int) error {
	return r.send(ctx, Report{Type: ReportScoreUpdate, MatchID: matchID, Score: score})
}

func (r *WSReporter) MatchEnd(ctx context.Context, result messages.MatchResult) error {
	return r.send(ctx, Report{Type: ReportMatchEnd, MatchID: result.MatchID, Score: result.Score, Result: &result})
}

func (r *WSReporter) send(ctx context.Context, rep Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateConnected {
		return fmt.Errorf("reporter not connected (state %d)", r.state)
	}
	if err := wsjson.Write(ctx, r.conn, rep); err != nil {
		r.state = StateError
		r.lastError = err
		_ = r.conn.CloseNow()
		return fmt.Errorf("write %s: %w", rep.Type, err)
	}
	return nil
}

func (r *WSReporter) State() ConnState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *WSReporter) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastError
}

// Close performs a normal closing handshake. Closing twice is a no-op.
func (r *WSReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateConnected {
		return nil
	}
	r.state = StateClosed
	return r.conn.Close(websocket.StatusNormalClosure, "match reporting done")
}
