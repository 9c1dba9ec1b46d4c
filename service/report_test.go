package service

import (
	"context"
	"testing"
	"time"

	"EcoBin/dao"
	"EcoBin/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 直接落库带指定时间戳的流水，报表测试需要控制时间窗口
func insertDisposal(t *testing.T, db *gorm.DB, userID uint, wasteType string, weight float64, points int, ts time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Disposal{
		UserID:       userID,
		WasteType:    wasteType,
		Weight:       weight,
		PointsEarned: points,
		Timestamp:    ts,
	}).Error)
}

func registerTestUser(t *testing.T, s *testServices, name, phone string) *models.User {
	t.Helper()
	user, _, err := s.user.Register(context.Background(), &UserRegisterOpt{
		Name: name, Phone: phone, Address: "Addr",
	})
	require.NoError(t, err)
	return user
}

func TestMonthlyWindowBoundary(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	user := registerTestUser(t, s, "Ravi", "9100000001")

	marchStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	aprilStart := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.Local)

	// 月初第一刻计入，次月初第一刻不计入
	insertDisposal(t, db, user.ID, "dry", 2.0, 30, marchStart)
	insertDisposal(t, db, user.ID, "wet", 1.0, 10, marchStart.Add(15*24*time.Hour))
	insertDisposal(t, db, user.ID, "dry", 5.0, 75, aprilStart)
	insertDisposal(t, db, user.ID, "dry", 5.0, 75, marchStart.Add(-time.Second))

	report, err := s.report.Monthly(ctx, 3, 2025)
	require.NoError(t, err)

	require.Equal(t, 3, report.Report.Month)
	require.Equal(t, 2025, report.Report.Year)
	require.Equal(t, "March 2025", report.Report.Period)

	require.EqualValues(t, 2, report.Summary.TotalDisposals)
	require.EqualValues(t, 1, report.Summary.ActiveUsers)
	require.Equal(t, 3.0, report.Summary.TotalWasteKg)
	require.Equal(t, 2.0, report.Summary.DryWasteKg)
	require.Equal(t, 1.0, report.Summary.WetWasteKg)
	require.EqualValues(t, 40, report.Summary.TotalPointsEarned)
}

func TestMonthlyValidation(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	for _, month := range []int{0, 13, -1} {
		_, err := s.report.Monthly(ctx, month, 2025)
		requireBizCode(t, err, 400)
	}
	for _, year := range []int{1999, 2101} {
		_, err := s.report.Monthly(ctx, 6, year)
		requireBizCode(t, err, 400)
	}
}

func TestMonthlyTopUsers(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	heavy := registerTestUser(t, s, "Heavy", "9100000011")
	light := registerTestUser(t, s, "Light", "9100000012")
	tieA := registerTestUser(t, s, "TieA", "9100000013")
	tieB := registerTestUser(t, s, "TieB", "9100000014")

	ts := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)
	insertDisposal(t, db, heavy.ID, "dry", 9.0, 135, ts)
	insertDisposal(t, db, light.ID, "wet", 1.0, 10, ts)
	insertDisposal(t, db, tieA.ID, "dry", 4.0, 60, ts)
	insertDisposal(t, db, tieB.ID, "dry", 4.0, 60, ts)

	report, err := s.report.Monthly(ctx, 6, 2025)
	require.NoError(t, err)
	require.Len(t, report.TopUsers, 4)

	require.Equal(t, "Heavy", report.TopUsers[0].Name)
	// 并列重量按 user_id 升序
	require.Equal(t, "TieA", report.TopUsers[1].Name)
	require.Equal(t, "TieB", report.TopUsers[2].Name)
	require.Equal(t, "Light", report.TopUsers[3].Name)
	require.Equal(t, 9.0, report.TopUsers[0].WasteKg)
}

func TestMonthlyTopUsersLimit(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	ts := time.Date(2025, time.July, 5, 8, 0, 0, 0, time.Local)
	phones := []string{"9100000021", "9100000022", "9100000023", "9100000024", "9100000025", "9100000026"}
	for i, phone := range phones {
		u := registerTestUser(t, s, "U"+phone, phone)
		insertDisposal(t, db, u.ID, "dry", float64(i+1), (i+1)*15, ts)
	}

	report, err := s.report.Monthly(ctx, 7, 2025)
	require.NoError(t, err)
	require.Len(t, report.TopUsers, 5)
	require.Equal(t, 6.0, report.TopUsers[0].WasteKg)
	require.Equal(t, 2.0, report.TopUsers[4].WasteKg)
}

func TestUserStats(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	user := registerTestUser(t, s, "Ravi", "9100000031")

	// 0.1+0.2 之类的浮点和要保留两位
	_, _, err := s.disposal.Record(ctx, user.ID, "dry", 0.1)
	require.NoError(t, err)
	_, _, err = s.disposal.Record(ctx, user.ID, "dry", 0.2)
	require.NoError(t, err)
	_, _, err = s.disposal.Record(ctx, user.ID, "wet", 1.5)
	require.NoError(t, err)

	stats, err := s.report.UserStats(ctx, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalDisposals)
	require.Equal(t, 1.8, stats.TotalWasteKg)
	require.Equal(t, 0.3, stats.DryWasteKg)
	require.Equal(t, 1.5, stats.WetWasteKg)
	require.Zero(t, stats.TotalRedemptions)
}

func TestGlobalStats(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	a := registerTestUser(t, s, "A", "9100000041")
	b := registerTestUser(t, s, "B", "9100000042")

	_, _, err := s.disposal.Record(ctx, a.ID, "dry", 2.0) // 30 分
	require.NoError(t, err)
	_, _, err = s.disposal.Record(ctx, b.ID, "wet", 4.0) // 40 分
	require.NoError(t, err)

	reward, err := s.reward.Create(ctx, newRewardReq("Snack", "d", 25))
	require.NoError(t, err)
	_, err = s.reward.Redeem(ctx, a.ID, reward.ID)
	require.NoError(t, err)

	stats, err := s.report.GlobalStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Users.Total)
	require.EqualValues(t, 2, stats.Disposals.Total)
	require.Equal(t, 6.0, stats.Disposals.TotalWasteKg)
	require.Equal(t, 2.0, stats.Disposals.DryWasteKg)
	require.Equal(t, 4.0, stats.Disposals.WetWasteKg)
	require.EqualValues(t, 70, stats.Rewards.TotalPointsDistributed)
	require.EqualValues(t, 25, stats.Rewards.TotalPointsRedeemed)
	require.EqualValues(t, 1, stats.Rewards.TotalRedemptions)
}

func TestListUsersWithStats(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	active := registerTestUser(t, s, "Active", "9100000051")
	idle := registerTestUser(t, s, "Idle", "9100000052")

	_, _, err := s.disposal.Record(ctx, active.ID, "dry", 3.5)
	require.NoError(t, err)

	resp, err := s.report.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalUsers)

	byID := make(map[uint]int, len(resp.Users))
	for i, u := range resp.Users {
		byID[u.ID] = i
	}
	got := resp.Users[byID[active.ID]]
	require.EqualValues(t, 1, got.TotalDisposals)
	require.Equal(t, 3.5, got.TotalWasteKg)
	require.Equal(t, 52, got.RewardPoints)

	got = resp.Users[byID[idle.ID]]
	require.Zero(t, got.TotalDisposals)
	require.Zero(t, got.TotalWasteKg)
}

func TestListDisposalsHalfOpenRange(t *testing.T) {
	cfg, db := setupDB(t)
	s := newServices(cfg, db)
	ctx := context.Background()

	user := registerTestUser(t, s, "Ravi", "9100000061")

	day := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.Local)
	insertDisposal(t, db, user.ID, "dry", 1.0, 15, day.Add(-time.Second))
	insertDisposal(t, db, user.ID, "dry", 2.0, 30, day)
	insertDisposal(t, db, user.ID, "wet", 3.0, 30, day.Add(12*time.Hour))
	insertDisposal(t, db, user.ID, "dry", 4.0, 60, day.Add(24*time.Hour))

	from := day
	to := day.Add(24 * time.Hour)
	disposals, err := s.disposal.Disposals.ListByFilter(ctx, dao.DisposalFilter{
		UserID: user.ID,
		From:   &from,
		To:     &to,
	})
	require.NoError(t, err)
	require.Len(t, disposals, 2)
	for _, d := range disposals {
		require.False(t, d.Timestamp.Before(from))
		require.True(t, d.Timestamp.Before(to))
	}
}
