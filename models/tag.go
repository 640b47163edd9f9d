package models

type Tag struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;size:200;not null" json:"name"`
	Slug string `gorm:"column:slug;size:50;not null;uniqueIndex:uk_tags_slug" json:"slug"`
}

func (Tag) TableName() string { return "tags" }
