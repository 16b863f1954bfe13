package viewdata_test

import (
	"testing"

	"github.com/dalemusser/givingback/internal/app/system/auth"
	"github.com/dalemusser/givingback/internal/app/system/viewdata"
	"github.com/dalemusser/givingback/internal/domain/models"
	"github.com/dalemusser/givingback/internal/testutil"
)

func TestNewBaseVM_Anonymous(t *testing.T) {
	vm := viewdata.NewBaseVM(testutil.NewRequest("GET", "/donate"), "Make a Donation")

	if vm.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName: got %q", vm.SiteName)
	}
	if vm.IsLoggedIn || vm.UserName != "" {
		t.Errorf("expected anonymous, got %+v", vm)
	}
	if vm.Title != "Make a Donation" {
		t.Errorf("Title: got %q", vm.Title)
	}
}

func TestNewBaseVM_SignedIn(t *testing.T) {
	req := auth.WithTestUser(testutil.NewRequest("GET", "/dashboard"), &auth.SessionUser{Username: "jane"})
	vm := viewdata.NewBaseVM(req, "Dashboard")
	if !vm.IsLoggedIn || vm.UserName != "jane" {
		t.Errorf("expected jane signed in, got %+v", vm)
	}
}

func TestSlot_States(t *testing.T) {
	if s := viewdata.Loading[int](); !s.IsLoading() || s.IsLoaded() || s.IsError() {
		t.Errorf("loading slot: %+v", s)
	}
	if s := viewdata.Loaded(3); !s.IsLoaded() || s.Data != 3 {
		t.Errorf("loaded slot: %+v", s)
	}
	if s := viewdata.Failed[[]string]("Error fetching donations."); !s.IsError() || s.Error != "Error fetching donations." {
		t.Errorf("failed slot: %+v", s)
	}
	var zero viewdata.Slot[int]
	if !zero.IsLoading() {
		t.Error("zero slot should read as loading")
	}
}
