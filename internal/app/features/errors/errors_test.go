package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	uierrors "github.com/dalemusser/givingback/internal/app/features/errors"
	"github.com/dalemusser/givingback/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogServerError_Renders500AndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	el := &uierrors.ErrorLogger{Log: zap.New(core), Render: testutil.NewRenderer(t, uierrors.FS)}

	rec := testutil.NewRecorder()
	el.LogServerError(rec, testutil.NewRequest("GET", "/donate"), "session save failed", fmt.Errorf("boom"), "We could not save your session.")

	rec.AssertStatus(t, http.StatusInternalServerError)
	rec.AssertContains(t, "We could not save your session.")
	rec.AssertContains(t, "Return Home")
	if logs.FilterMessage("session save failed").Len() != 1 {
		t.Error("expected the fault to be logged")
	}
}

func TestNotFound_Renders404(t *testing.T) {
	el := &uierrors.ErrorLogger{Log: zap.NewNop(), Render: testutil.NewRenderer(t, uierrors.FS)}

	rec := testutil.NewRecorder()
	el.NotFound(rec, testutil.NewRequest("GET", "/nope"))

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "does not exist")
}
