package models

type FeedbackModel struct {
	ID          uint   `gorm:"primaryKey"`
	ComplaintID uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	Rating      int    `gorm:"not null"`
	Comment     string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (FeedbackModel) TableName() string {
	return "feedback"
}
