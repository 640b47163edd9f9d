package types

// ShoppingItem 合并后的购物清单条目，按 (Name, MeasurementUnit) 归并
type ShoppingItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}
