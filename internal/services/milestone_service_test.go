package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/projectzeus/checkin-backend/internal/models"
)

var milestoneNow = time.Date(2024, 5, 20, 18, 0, 0, 0, time.UTC)

func newMilestoneService(t *testing.T, repo *fakeUserRepo) *MilestoneService {
	t.Helper()
	svc, err := NewMilestoneService(repo, testConfig())
	if err != nil {
		t.Fatalf("NewMilestoneService: %v", err)
	}
	svc.now = func() time.Time { return milestoneNow }
	return svc
}

func milestoneUser(username string, level, strk, referrals int, lastCheckIn string) *models.User {
	return &models.User{
		Identifier:      "Z" + username,
		Username:        username,
		Level:           level,
		Streak:          strk,
		ReferralCount:   referrals,
		LastCheckInDate: lastCheckIn,
	}
}

func TestScanLevelGroupsAreCumulative(t *testing.T) {
	repo := &fakeUserRepo{}
	today := milestoneNow.Format("2006-01-02")
	repo.Create(context.Background(), milestoneUser("alice", 60, 1, 0, today))
	repo.Create(context.Background(), milestoneUser("bob", 30, 1, 0, today))
	repo.Create(context.Background(), milestoneUser("carol", 10, 1, 0, today))
	svc := newMilestoneService(t, repo)

	report, err := svc.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	// Thresholds are 25 and 50; alice (60) must appear under both.
	want := []models.MilestoneGroup{
		{Value: 25, Usernames: []string{"alice", "bob"}},
		{Value: 50, Usernames: []string{"alice"}},
	}
	if !reflect.DeepEqual(report.Level, want) {
		t.Errorf("Level = %+v, want %+v", report.Level, want)
	}
}

func TestScanStreakRequiresTodayAndExactMultiple(t *testing.T) {
	repo := &fakeUserRepo{}
	today := milestoneNow.Format("2006-01-02")
	yesterday := milestoneNow.AddDate(0, 0, -1).Format("2006-01-02")
	repo.Create(context.Background(), milestoneUser("hit10", 1, 10, 0, today))
	repo.Create(context.Background(), milestoneUser("hit5", 1, 5, 0, today))
	repo.Create(context.Background(), milestoneUser("stale", 1, 15, 0, yesterday))
	repo.Create(context.Background(), milestoneUser("offbeat", 1, 7, 0, today))
	repo.Create(context.Background(), milestoneUser("fresh", 1, 0, 0, ""))
	svc := newMilestoneService(t, repo)

	report, err := svc.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []models.MilestoneGroup{
		{Value: 5, Usernames: []string{"hit5"}},
		{Value: 10, Usernames: []string{"hit10"}},
	}
	if !reflect.DeepEqual(report.Streak, want) {
		t.Errorf("Streak = %+v, want %+v", report.Streak, want)
	}
}

func TestScanReferralGroups(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.Create(context.Background(), milestoneUser("promoter", 1, 1, 21, ""))
	repo.Create(context.Background(), milestoneUser("starter", 1, 1, 6, ""))
	repo.Create(context.Background(), milestoneUser("quiet", 1, 1, 2, ""))
	svc := newMilestoneService(t, repo)

	report, err := svc.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []models.MilestoneGroup{
		{Value: 5, Usernames: []string{"promoter", "starter"}},
		{Value: 20, Usernames: []string{"promoter"}},
	}
	if !reflect.DeepEqual(report.Referral, want) {
		t.Errorf("Referral = %+v, want %+v", report.Referral, want)
	}
}

func TestScanEmptyReport(t *testing.T) {
	repo := &fakeUserRepo{}
	repo.Create(context.Background(), milestoneUser("newbie", 1, 1, 0, ""))
	svc := newMilestoneService(t, repo)

	report, err := svc.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !report.Empty() {
		t.Errorf("report should be empty, got %+v", report)
	}
}
