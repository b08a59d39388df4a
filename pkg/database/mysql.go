package database

import (
	"fmt"
	"log"
	"trueinvest_backend/internal/config"
	"trueinvest_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Goal{},
		&model.GoalEvent{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.TimeEntry{},
		&model.Sale{},
		&model.Activity{},
		&model.Meeting{},
		&model.Notification{},
		&model.AppSetting{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// seedDefaults inserts the starter goal catalog, achievement catalog and
// branding keys on an empty database.
func seedDefaults(db *gorm.DB) {
	var goalCount int64
	db.Model(&model.Goal{}).Count(&goalCount)
	if goalCount == 0 {
		defaultGoals := []model.Goal{
			{Title: "Vendas do Mês", Description: "Feche vendas este mês", Category: "sales", TargetValue: 8, RewardPoints: 100, Period: model.PeriodMonthly, Kind: model.GoalRecurring, Active: true},
			{Title: "Reuniões do Mês", Description: "Realize reuniões com clientes", Category: "meetings", TargetValue: 20, RewardPoints: 50, Period: model.PeriodMonthly, Kind: model.GoalRecurring, Active: true},
			{Title: "Visitas Agendadas", Description: "Agende visitas a imóveis", Category: "visits", TargetValue: 15, RewardPoints: 30, Period: model.PeriodWeekly, Kind: model.GoalRecurring, Active: true},
			{Title: "Primeiro Ponto", Description: "Registre seu primeiro ponto", Category: "points", TargetValue: 1, RewardPoints: 20, Period: model.PeriodDaily, Kind: model.GoalOneTime, Active: true},
		}
		for _, g := range defaultGoals {
			db.Create(&g)
		}
	}

	var achievementCount int64
	db.Model(&model.Achievement{}).Count(&achievementCount)
	if achievementCount == 0 {
		defaultAchievements := []model.Achievement{
			{Title: "Vendedor Estrela", Description: "5 vendas em um mês", Icon: "star", RewardPoints: 200, RequirementType: "sales", RequirementValue: 5},
			{Title: "Pontual", Description: "15 dias consecutivos no horário", Icon: "clock", RewardPoints: 100, RequirementType: "attendance", RequirementValue: 15},
			{Title: "Super Produtivo", Description: "20 reuniões em um mês", Icon: "trending-up", RewardPoints: 150, RequirementType: "meetings", RequirementValue: 20},
			{Title: "Milhar", Description: "Alcance 1000 pontos", Icon: "award", RewardPoints: 100, RequirementType: "points", RequirementValue: 1000},
		}
		for _, a := range defaultAchievements {
			db.Create(&a)
		}
	}

	var settingCount int64
	db.Model(&model.AppSetting{}).Count(&settingCount)
	if settingCount == 0 {
		defaultSettings := []model.AppSetting{
			{Key: model.SettingLoginBackgroundType, Value: "none"},
			{Key: model.SettingLoginBackgroundURL, Value: ""},
			{Key: model.SettingLogoURL, Value: ""},
		}
		for _, s := range defaultSettings {
			db.Create(&s)
		}
	}
}
