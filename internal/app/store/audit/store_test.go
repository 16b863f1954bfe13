package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/givingback/internal/app/store/audit"
	"github.com/dalemusser/givingback/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// storedEvents reads the collection back newest first.
func storedEvents(t *testing.T, db *mongo.Database, filter bson.M) []audit.Event {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cur, err := db.Collection(audit.CollectionName).Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	var events []audit.Event
	if err := cur.All(ctx, &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	return events
}

func TestStore_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	event := audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		Actor:     "admin",
		IP:        "192.168.1.1",
		UserAgent: "TestBrowser/1.0",
		Success:   true,
	}

	if err := store.Log(ctx, event); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events := storedEvents(t, db, bson.M{"actor": "admin"})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID.IsZero() {
		t.Error("expected ID to be auto-generated")
	}
	if events[0].IP != "192.168.1.1" || events[0].EventType != audit.EventLoginSuccess {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestStore_Log_AutoSetsTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before := time.Now().Add(-time.Second)
	if err := store.Log(ctx, audit.Event{Category: audit.CategoryAuth, EventType: audit.EventLogout, Success: true}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	after := time.Now().Add(time.Second)

	events := storedEvents(t, db, bson.M{})
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ts := events[0].Timestamp
	if ts.Before(before) || ts.After(after) {
		t.Errorf("timestamp %v outside [%v, %v]", ts, before, after)
	}
}

func TestStore_Log_KeepsDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	err := store.Log(ctx, audit.Event{
		Category:      audit.CategoryAdmin,
		EventType:     audit.EventDonationStatusFailed,
		Actor:         "admin",
		Success:       false,
		FailureReason: "Only pending donations can be confirmed.",
		Details:       map[string]string{"donation_id": "3", "action": "confirm"},
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events := storedEvents(t, db, bson.M{"category": audit.CategoryAdmin})
	if len(events) != 1 {
		t.Fatalf("expected 1 admin event, got %d", len(events))
	}
	e := events[0]
	if e.Success || e.FailureReason == "" {
		t.Errorf("expected a recorded failure, got %+v", e)
	}
	if e.Details["donation_id"] != "3" || e.Details["action"] != "confirm" {
		t.Errorf("details: got %v", e.Details)
	}
}
