package domain

import "github.com/shopspring/decimal"

// Article is a catalog entry that can be placed on document lines.
type Article struct {
	ArticleID   string          `json:"articleID"` // Primary Key (UUID)
	Designation string          `json:"designation"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // percent
	AuditFields
}

// ArticleCategory groups catalog articles. Categories nest one level through
// ParentID.
type ArticleCategory struct {
	CategoryID  string  `json:"categoryID"` // Primary Key (UUID)
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color,omitempty"`
	ParentID    *string `json:"parentID,omitempty"`
	AuditFields
}

// ArticleLot is a named bundle of articles inside a category, used to group
// tender lots.
type ArticleLot struct {
	LotID       string `json:"lotID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	CategoryID  string `json:"categoryID"`
	AuditFields
}
