package database

import (
	"fmt"
	"log"
	"mindwell_backend/internal/config"
	"mindwell_backend/internal/model"
	"mindwell_backend/internal/scoring"

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
		&model.UserProfile{},
		&model.QuizResult{},
		&model.WellnessResource{},
		&model.SleepSound{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Seed 插入默认的推荐资源和助眠音频（仅在表为空时）
func Seed(db *gorm.DB) error {
	var resCount int64
	db.Model(&model.WellnessResource{}).Count(&resCount)
	if resCount == 0 {
		for _, r := range defaultResources() {
			if err := db.Create(&r).Error; err != nil {
				return err
			}
		}
	}

	var soundCount int64
	db.Model(&model.SleepSound{}).Count(&soundCount)
	if soundCount == 0 {
		defaultSounds := []model.SleepSound{
			{Name: "Ocean Waves", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3", Description: "Gentle ocean waves to help you unwind", Order: 1, Enabled: true},
			{Name: "Rainfall", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3", Description: "Soothing rainfall sounds for deep relaxation", Order: 2, Enabled: true},
			{Name: "Forest Night", URL: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-4.mp3", Description: "Calm forest ambience for restful sleep", Order: 3, Enabled: true},
		}
		for _, s := range defaultSounds {
			if err := db.Create(&s).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func defaultResources() []model.WellnessResource {
	return []model.WellnessResource{
		// 低风险
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskLow, Title: "Mindfulness Practice for Everyday Life", Description: "Incorporate simple mindfulness techniques into your daily routine.", URL: "https://www.mindful.org/meditation/mindfulness-getting-started/", Order: 1, Enabled: true},
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskLow, Title: "Self-Care Strategies for Mental Wellness", Description: "Practical tips to maintain your positive mental state.", URL: "https://www.psychologytoday.com/us/blog/click-here-happiness/201812/self-care-12-ways-take-better-care-yourself", Order: 2, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskLow, Title: "SAMHSA's National Helpline", Description: "Free, confidential, 24/7 treatment referral and information service.", Number: "1-800-662-4357", Order: 1, Enabled: true},

		// 中风险
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskModerate, Title: "Managing Stress and Anxiety", Description: "Evidence-based techniques to reduce moderate stress and anxiety.", URL: "https://www.helpguide.org/articles/stress/stress-management.htm", Order: 1, Enabled: true},
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskModerate, Title: "Sleep Improvement Strategies", Description: "How better sleep can improve your mental health.", URL: "https://www.sleepfoundation.org/mental-health", Order: 2, Enabled: true},
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskModerate, Title: "The Benefits of Regular Exercise for Mental Health", Description: "How physical activity helps reduce stress and improve mood.", URL: "https://www.mayoclinic.org/diseases-conditions/depression/in-depth/depression-and-exercise/art-20046495", Order: 3, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskModerate, Title: "SAMHSA's National Helpline", Description: "Free, confidential, 24/7 treatment referral and information service.", Number: "1-800-662-4357", Order: 1, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskModerate, Title: "Crisis Text Line", Description: "Free 24/7 support for those in crisis.", Number: "Text HOME to 741741", Order: 2, Enabled: true},

		// 高风险
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskHigh, Title: "Understanding and Managing Anxiety", Description: "In-depth guide to managing severe anxiety and panic attacks.", URL: "https://www.nimh.nih.gov/health/publications/panic-disorder-when-fear-overwhelms", Order: 1, Enabled: true},
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskHigh, Title: "Depression: Symptoms, Causes, and Treatment", Description: "Comprehensive information about depression and effective treatments.", URL: "https://www.nimh.nih.gov/health/topics/depression", Order: 2, Enabled: true},
		{Kind: model.ResourceArticle, RiskLevel: scoring.RiskHigh, Title: "Finding Professional Mental Health Support", Description: "How to find the right therapist or counselor for your needs.", URL: "https://www.mentalhealth.gov/get-help/immediate-help", Order: 3, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskHigh, Title: "National Suicide Prevention Lifeline", Description: "Provides 24/7, free and confidential support for people in distress.", Number: "988 or 1-800-273-8255", Order: 1, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskHigh, Title: "Crisis Text Line", Description: "Free 24/7 support for those in crisis.", Number: "Text HOME to 741741", Order: 2, Enabled: true},
		{Kind: model.ResourceHotline, RiskLevel: scoring.RiskHigh, Title: "SAMHSA's National Helpline", Description: "Free, confidential, 24/7 treatment referral and information service.", Number: "1-800-662-4357", Order: 3, Enabled: true},
	}
}
