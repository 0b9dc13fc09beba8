package models

type Note struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title   string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`
}

func (n Note) TableName() string {
	return "notes"
}
