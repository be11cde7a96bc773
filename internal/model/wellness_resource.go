package model

import "mindwell_backend/internal/scoring"

type ResourceKind string

const (
	ResourceArticle ResourceKind = "article"
	ResourceHotline ResourceKind = "hotline"
)

// WellnessResource 按风险等级推荐的文章/热线条目，启动时播种
type WellnessResource struct {
	BaseModel
	Kind        ResourceKind      `gorm:"type:varchar(20);not null;index" json:"kind"`
	RiskLevel   scoring.RiskLevel `gorm:"type:varchar(20);not null;index" json:"riskLevel"`
	Title       string            `gorm:"size:255;not null" json:"title"`
	Description string            `gorm:"size:500" json:"description"`
	URL         string            `gorm:"size:255" json:"url,omitempty"`
	Number      string            `gorm:"size:50" json:"number,omitempty"` // 热线号码
	Order       int               `gorm:"default:0" json:"order"`
	Enabled     bool              `gorm:"default:true" json:"enabled"`
}

func (WellnessResource) TableName() string {
	return "wellness_resources"
}

// SleepSound 助眠音频条目，播放在客户端完成，这里只存目录
type SleepSound struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	URL         string `gorm:"size:255;not null" json:"url"`
	Description string `gorm:"size:255" json:"description"`
	Order       int    `gorm:"default:0" json:"order"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
}

func (SleepSound) TableName() string {
	return "sleep_sounds"
}
