package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stayora/booking-platform/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository persists authentication audit events.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Email      string    `bson:"email"`
	Action     string    `bson:"action"`
	Outcome    string    `bson:"outcome"`
	RemoteAddr string    `bson:"remote_addr,omitempty"`
	Timestamp  time.Time `bson:"timestamp"`
	RecordedAt time.Time `bson:"recorded_at"`
}

// Insert appends one event to the audit trail.
func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := auditDoc{
		Email:      event.Email,
		Action:     event.Action,
		Outcome:    event.Outcome,
		RemoteAddr: event.RemoteAddr,
		Timestamp:  event.Timestamp.UTC(),
		RecordedAt: time.Now().UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

// ListRecent returns the newest events first, up to limit.
func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cur.Close(ctx)

	var docs []auditDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode auth events: %w", err)
	}

	events := make([]domain.AuthEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, domain.AuthEvent{
			Email:      d.Email,
			Action:     d.Action,
			Outcome:    d.Outcome,
			RemoteAddr: d.RemoteAddr,
			Timestamp:  d.Timestamp.UTC(),
		})
	}
	return events, nil
}
