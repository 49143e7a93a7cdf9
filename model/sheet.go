package model

// SheetCell stores one cell of a worksheet. Row 1 holds the header.
type SheetCell struct {
	DTO
	Sheet  string `gorm:"size:64;not null;uniqueIndex:idx_sheet_cell" json:"sheet"`
	RowNum int    `gorm:"not null;uniqueIndex:idx_sheet_cell" json:"row"`
	ColNum int    `gorm:"not null;uniqueIndex:idx_sheet_cell" json:"col"`
	Value  string `gorm:"type:text" json:"value"`
}
