package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"EcoBin/config"
	"EcoBin/dao"
	"EcoBin/models"
	"EcoBin/pkg/database"
	"EcoBin/pkg/encrypt"
	"EcoBin/pkg/log"
	"EcoBin/pkg/points"
	"EcoBin/service"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 默认奖励目录，与线上首发目录一致
var defaultRewards = []models.Reward{
	{Name: "Dominos 10% Off", Description: "10% discount on Dominos pizza", PointsRequired: 100, Active: true},
	{Name: "Dominos 20% Off", Description: "20% discount on Dominos pizza", PointsRequired: 200, Active: true},
	{Name: "Dominos Free Garlic Bread", Description: "Free garlic bread with any pizza", PointsRequired: 150, Active: true},
	{Name: "Swiggy 15% Off", Description: "15% discount on Swiggy orders", PointsRequired: 180, Active: true},
	{Name: "Amazon ₹50 Voucher", Description: "₹50 Amazon gift voucher", PointsRequired: 250, Active: true},
}

func main() {
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "migrate schema and load default data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "also generate demo users and disposals",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg := config.New(fmt.Sprintf("configs/config.%s.yaml", env))
			db := database.NewDB(cfg)

			if err := seedDefaults(ctx.Context, db); err != nil {
				return err
			}
			if ctx.Bool("sample") {
				return seedSample(ctx.Context, cfg, db)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.L.Fatal("seed failed", zap.Error(err))
	}
}

func seedDefaults(ctx context.Context, db *gorm.DB) error {
	admins := dao.NewAdmins(db)
	if _, err := admins.FindByUsername(ctx, "admin"); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		err := admins.Create(ctx, &models.Admin{
			Username:     "admin",
			PasswordHash: encrypt.HashPassword("admin123"),
		})
		if err != nil {
			return err
		}
		log.L.Info("default admin created", zap.String("username", "admin"))
	}

	rewards := dao.NewRewards(db)
	for _, r := range defaultRewards {
		exist, err := rewards.IsExist(ctx, "name = ?", r.Name)
		if err != nil {
			return err
		}
		if exist {
			continue
		}
		reward := r
		if err := rewards.Create(ctx, &reward); err != nil {
			return err
		}
		log.L.Info("default reward created", zap.String("name", reward.Name))
	}
	return nil
}

// seedSample 走正常服务链路造数据，保证余额和流水一致
func seedSample(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	users := dao.NewUsers(db)
	disposals := dao.NewDisposals(db)

	userService := &service.UserService{Config: cfg, DB: db, Users: users}
	disposalService := &service.DisposalService{Config: cfg, DB: db, Users: users, Disposals: disposals}

	names := []string{"Ravi Kumar", "Priya Sharma", "Arjun Mehta", "Sneha Patel", "Vikram Singh"}
	wasteTypes := []string{points.WasteTypeDry, points.WasteTypeWet}

	for i, name := range names {
		user, _, err := userService.Register(ctx, &service.UserRegisterOpt{
			Name:    name,
			Phone:   fmt.Sprintf("98765%05d", i),
			Address: fmt.Sprintf("%d MG Road, Bengaluru", i+1),
		})
		if err != nil {
			log.L.Warn("sample user skipped", zap.String("name", name), zap.Error(err))
			continue
		}

		for j := 0; j < 3+rand.Intn(5); j++ {
			wasteType := wasteTypes[rand.Intn(len(wasteTypes))]
			weight := 0.5 + rand.Float64()*4.5
			if _, _, err := disposalService.Record(ctx, user.ID, wasteType, weight); err != nil {
				return err
			}
		}
	}

	log.L.Info("sample data generated")
	return nil
}
