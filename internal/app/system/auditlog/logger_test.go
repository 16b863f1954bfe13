package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/givingback/internal/app/store/audit"
	"github.com/dalemusser/givingback/internal/app/system/auditlog"
	"github.com/dalemusser/givingback/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_NilLogger(t *testing.T) {
	// nil logger should be a no-op (not panic)
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("GET", "/", nil)

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.LoginSuccess(ctx, req, "admin")
	logger.Logout(ctx, req, "admin")
	logger.DonationConfirmed(ctx, req, "admin", "1")
}

func TestLogger_LogOnly_NoStore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Auth: "all", Admin: "log"})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := httptest.NewRequest("POST", "/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	logger.LoginFailed(ctx, req, "admin", "Invalid credentials")

	entries := logs.FilterField(zap.String("event_type", audit.EventLoginFailed)).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 login_failed entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["ip"] != "203.0.113.9" {
		t.Errorf("ip: got %v", fields["ip"])
	}
	if fields["failure_reason"] != "Invalid credentials" {
		t.Errorf("failure_reason: got %v", fields["failure_reason"])
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("failed events log at warn, got %v", entries[0].Level)
	}
}

func TestLogger_ConfigOff_WritesNothing(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := auditlog.New(nil, zap.New(core), auditlog.Config{Auth: "off", Admin: "off"})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := httptest.NewRequest("POST", "/admin/donations/1/confirm", nil)
	logger.LoginSuccess(ctx, req, "admin")
	logger.DonationConfirmed(ctx, req, "admin", "1")

	if n := logs.Len(); n != 0 {
		t.Errorf("expected no log entries, got %d", n)
	}
}

func TestLogger_ConfigDB_StoresEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := auditlog.New(store, zap.New(core), auditlog.Config{Auth: "db", Admin: "db"})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := httptest.NewRequest("POST", "/admin/donations/7/fail", nil)
	logger.DonationFailed(ctx, req, "admin", "7")

	cur, err := db.Collection(audit.CollectionName).Find(ctx, bson.M{"event_type": audit.EventDonationFailed})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	var events []audit.Event
	if err := cur.All(ctx, &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Details["donation_id"] != "7" || events[0].Actor != "admin" {
		t.Errorf("unexpected event: %+v", events[0])
	}
	if logs.Len() != 0 {
		t.Errorf("db-only config should not log to zap, got %d entries", logs.Len())
	}
}
