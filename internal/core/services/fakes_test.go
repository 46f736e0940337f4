package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
)

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.add("debug", msg, fields)
}
func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.add("info", msg, fields)
}
func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.add("warn", msg, fields)
}
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.add("error", msg, fields)
}

func (l *recordingLogger) errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, e := range l.entries {
		if e.level == "error" {
			out = append(out, e.msg)
		}
	}
	return out
}

var errBackendDown = errors.New("connection refused")

// fakeGateway serves records from memory and fails the operations named in
// failures.
type fakeGateway struct {
	records  []*domain.Bicycle
	failures map[string]error

	calls   []string
	created []*domain.Bicycle
	updated map[domain.BicycleID]*domain.Bicycle
}

func newFakeGateway(records ...*domain.Bicycle) *fakeGateway {
	return &fakeGateway{
		records:  records,
		failures: map[string]error{},
		updated:  map[domain.BicycleID]*domain.Bicycle{},
	}
}

func (g *fakeGateway) List(_ context.Context) ([]*domain.Bicycle, error) {
	g.calls = append(g.calls, "list")
	if err := g.failures["list"]; err != nil {
		return nil, err
	}
	out := make([]*domain.Bicycle, len(g.records))
	copy(out, g.records)
	return out, nil
}

func (g *fakeGateway) Get(_ context.Context, id domain.BicycleID) (*domain.Bicycle, error) {
	g.calls = append(g.calls, "get "+id.String())
	if err := g.failures["get"]; err != nil {
		return nil, err
	}
	for _, b := range g.records {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domain.ErrBicycleNotFound
}

func (g *fakeGateway) Create(_ context.Context, bicycle *domain.Bicycle) error {
	g.calls = append(g.calls, "create")
	if err := g.failures["create"]; err != nil {
		return err
	}
	g.created = append(g.created, bicycle)
	stored := *bicycle
	stored.ID = domain.BicycleID("new")
	g.records = append(g.records, &stored)
	return nil
}

func (g *fakeGateway) Update(_ context.Context, id domain.BicycleID, bicycle *domain.Bicycle) error {
	g.calls = append(g.calls, "update "+id.String())
	if err := g.failures["update"]; err != nil {
		return err
	}
	g.updated[id] = bicycle
	for i, b := range g.records {
		if b.ID == id {
			stored := *bicycle
			stored.ID = id
			g.records[i] = &stored
		}
	}
	return nil
}

func (g *fakeGateway) Delete(_ context.Context, id domain.BicycleID) error {
	g.calls = append(g.calls, "delete "+id.String())
	if err := g.failures["delete"]; err != nil {
		return err
	}
	for i, b := range g.records {
		if b.ID == id {
			g.records = append(g.records[:i], g.records[i+1:]...)
			break
		}
	}
	return nil
}
