package schema

import "time"

// Style represents the styles table - the product catalog contracts reference
type Style struct {
	StyleNumber     string    `gorm:"column:style_number;primaryKey;type:varchar(50)" json:"style_number"`
	ItemNumber      string    `gorm:"column:item_number;type:text" json:"item_number"`
	ItemDescription string    `gorm:"column:item_desc;type:text" json:"item_desc"`
	Season          string    `gorm:"column:season;type:text" json:"season"`
	BusinessLine    string    `gorm:"column:business_line;type:text" json:"business_line"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`
}

// TableName specifies the table name for the Style model
func (Style) TableName() string {
	return "styles"
}
