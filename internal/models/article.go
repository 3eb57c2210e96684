package models

import "github.com/shopspring/decimal"

// Article is the row model for the articles table.
type Article struct {
	ArticleID   string          `json:"articleID"`
	Designation string          `json:"designation"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	AuditFields
}

// ArticleCategory is the row model for the article_categories table.
type ArticleCategory struct {
	CategoryID  string  `json:"categoryID"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	Color       string  `json:"color,omitempty"`
	ParentID    *string `json:"parentID,omitempty"`
	AuditFields
}

// ArticleLot is the row model for the article_lots table.
type ArticleLot struct {
	LotID       string `json:"lotID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	CategoryID  string `json:"categoryID"`
	AuditFields
}
