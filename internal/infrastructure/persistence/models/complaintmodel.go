package models

type ComplaintModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	Title          string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text;not null"`
	Category       string `gorm:"size:50;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	AssigneeID     *uint  `gorm:"index"`
	ResolutionNote string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
