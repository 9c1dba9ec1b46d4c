package dao

import (
	"context"
	"fmt"
	"testing"

	"EcoBin/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, phone string, points int) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test",
		Phone:        phone,
		Address:      "Addr",
		QrCode:       "qr-" + phone,
		RewardPoints: points,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestAddPoints(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "9000000001", 0)

	rows, err := AddPoints(db, user.ID, 30)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	rows, err = AddPoints(db, user.ID, 12)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	require.Equal(t, 42, fresh.RewardPoints)
}

// 扣减超过余额必须零行生效，余额保持不动
func TestAddPointsInsufficient(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "9000000002", 25)

	rows, err := AddPoints(db, user.ID, -30)
	require.NoError(t, err)
	require.Zero(t, rows)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	require.Equal(t, 25, fresh.RewardPoints)

	// 刚好等于余额可以扣到零
	rows, err = AddPoints(db, user.ID, -25)
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)
	require.NoError(t, db.First(&fresh, user.ID).Error)
	require.Zero(t, fresh.RewardPoints)
}

func TestAddPointsUnknownUser(t *testing.T) {
	db := newTestDB(t)

	rows, err := AddPoints(db, 4242, 10)
	require.NoError(t, err)
	require.Zero(t, rows)
}

func TestUsersLookups(t *testing.T) {
	db := newTestDB(t)
	users := NewUsers(db)
	ctx := context.Background()

	created := createUser(t, db, "9000000003", 0)

	exist, err := users.IsPhoneExist(ctx, "9000000003")
	require.NoError(t, err)
	require.True(t, exist)

	exist, err = users.IsPhoneExist(ctx, "9999999999")
	require.NoError(t, err)
	require.False(t, exist)

	got, err := users.FindByQrCode(ctx, created.QrCode)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	_, err = users.FindByQrCode(ctx, "missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

// 库不可用时必须报错，而不是当作号码未注册
func TestIsPhoneExistStoreError(t *testing.T) {
	db := newTestDB(t)
	users := NewUsers(db)
	ctx := context.Background()

	createUser(t, db, "9000000004", 0)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = users.IsPhoneExist(ctx, "9000000004")
	require.Error(t, err)
}
