package models

// Ingredient 食材。合并购物清单时按 (Name, MeasurementUnit) 归并，而不是按 ID
type Ingredient struct {
	ID              uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"column:name;size:128;not null;index:idx_ingredients_name" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;size:64;not null" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
