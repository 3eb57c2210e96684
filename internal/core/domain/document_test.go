package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDocumentTotals(t *testing.T) {
	doc := Document{
		TVA: decimal.NewFromInt(18),
		Items: []LineItem{
			{Description: "Serveur", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(400)},
			{Description: "Onduleur", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(200)},
		},
	}

	assert.True(t, doc.TotalHT().Equal(decimal.NewFromInt(1000)))
	assert.True(t, doc.TVAAmount().Equal(decimal.NewFromInt(180)))
	assert.True(t, doc.TotalTTC().Equal(decimal.NewFromInt(1180)))
}

func TestTVAAmountRoundsToUnit(t *testing.T) {
	// 3 * 37 = 111 HT, 18% -> 19.98, rounds to 20.
	doc := Document{
		TVA: decimal.NewFromInt(18),
		Items: []LineItem{
			{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(37)},
		},
	}
	assert.True(t, doc.TVAAmount().Equal(decimal.NewFromInt(20)))
	assert.True(t, doc.TotalTTC().Equal(decimal.NewFromInt(131)))

	// 1 * 25 HT, 18% -> 4.5, rounds half away from zero to 5.
	doc.Items = []LineItem{{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(25)}}
	assert.True(t, doc.TVAAmount().Equal(decimal.NewFromInt(5)))
}

func TestTotalPaid(t *testing.T) {
	doc := Document{
		Payments: []Payment{
			{Amount: decimal.NewFromInt(500)},
			{Amount: decimal.NewFromInt(680)},
		},
	}
	assert.True(t, doc.TotalPaid().Equal(decimal.NewFromInt(1180)))

	assert.True(t, Document{}.TotalPaid().IsZero())
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	t.Run("no due date never overdue", func(t *testing.T) {
		doc := Document{Status: StatusPending}
		assert.False(t, doc.IsOverdue(now))
	})

	t.Run("past due date is overdue", func(t *testing.T) {
		doc := Document{Status: StatusPending, DueDate: &past}
		assert.True(t, doc.IsOverdue(now))
	})

	t.Run("future due date is not overdue", func(t *testing.T) {
		doc := Document{Status: StatusPending, DueDate: &future}
		assert.False(t, doc.IsOverdue(now))
	})

	t.Run("paid documents are never overdue", func(t *testing.T) {
		doc := Document{Status: StatusPaid, DueDate: &past}
		assert.False(t, doc.IsOverdue(now))
	})
}
