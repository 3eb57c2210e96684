package services

import (
	"testing"
	"time"

	"github.com/ediba/backoffice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func docWithRef(docType domain.DocumentType, year int, ref string) domain.Document {
	return domain.Document{
		Type:      docType,
		Reference: ref,
		Date:      time.Date(year, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNextSequence(t *testing.T) {
	t.Run("empty store starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, nextSequence(nil, domain.Invoice, 2025))
	})

	t.Run("returns max plus one", func(t *testing.T) {
		docs := []domain.Document{
			docWithRef(domain.Invoice, 2025, "2025-0001"),
			docWithRef(domain.Invoice, 2025, "2025-0007"),
			docWithRef(domain.Invoice, 2025, "2025-0003"),
		}
		assert.Equal(t, 8, nextSequence(docs, domain.Invoice, 2025))
	})

	t.Run("ignores other types and years", func(t *testing.T) {
		docs := []domain.Document{
			docWithRef(domain.Invoice, 2025, "2025-0009"),
			docWithRef(domain.Proforma, 2025, "2025-0042"),
			docWithRef(domain.Invoice, 2024, "2024-0042"),
		}
		assert.Equal(t, 10, nextSequence(docs, domain.Invoice, 2025))
	})

	t.Run("skips unparsable references", func(t *testing.T) {
		docs := []domain.Document{
			docWithRef(domain.Invoice, 2025, "garbage"),
			docWithRef(domain.Invoice, 2025, "2025-abc"),
			docWithRef(domain.Invoice, 2025, "2025-0004"),
		}
		assert.Equal(t, 5, nextSequence(docs, domain.Invoice, 2025))
	})

	t.Run("all unparsable behaves like empty", func(t *testing.T) {
		docs := []domain.Document{
			docWithRef(domain.Invoice, 2025, "no-number-here"),
		}
		assert.Equal(t, 1, nextSequence(docs, domain.Invoice, 2025))
	})
}

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "N°F2500007", formatDocumentNumber(domain.Invoice, 2025, 7))
	assert.Equal(t, "N°D2500001", formatDocumentNumber(domain.Proforma, 2025, 1))
	assert.Equal(t, "N°BL2400123", formatDocumentNumber(domain.Delivery, 2024, 123))
	assert.Equal(t, "N°CMD2500002", formatDocumentNumber(domain.Order, 2025, 2))
	assert.Equal(t, "N°DOC2500001", formatDocumentNumber(domain.Contract, 2025, 1))
}

func TestFormatReference(t *testing.T) {
	assert.Equal(t, "2025-0007", formatReference(2025, 7))
	assert.Equal(t, "2024-1234", formatReference(2024, 1234))
}

func TestNextTrailingSequence(t *testing.T) {
	t.Run("empty starts at 1", func(t *testing.T) {
		assert.Equal(t, 1, nextTrailingSequence(nil))
	})

	t.Run("returns max plus one across prefixes", func(t *testing.T) {
		ids := []string{"DECHARGE N°003", "DECHARGE N°011", "DECHARGE N°007"}
		assert.Equal(t, 12, nextTrailingSequence(ids))

		mixed := []string{"CONTRACT-002", "ORDER-005", "CONTRACT-004"}
		assert.Equal(t, 6, nextTrailingSequence(mixed))
	})

	t.Run("skips ids without trailing digits", func(t *testing.T) {
		ids := []string{"imported", "DECHARGE N°002", "legacy-entry-"}
		assert.Equal(t, 3, nextTrailingSequence(ids))
	})
}

func TestFormatDischargeNumber(t *testing.T) {
	assert.Equal(t, "DECHARGE N°001", formatDischargeNumber(1))
	assert.Equal(t, "DECHARGE N°042", formatDischargeNumber(42))
	assert.Equal(t, "DECHARGE N°1234", formatDischargeNumber(1234))
}

func TestFormatContractOrderID(t *testing.T) {
	assert.Equal(t, "CONTRACT-003", formatContractOrderID(domain.ContractOrderContract, 3))
	assert.Equal(t, "ORDER-010", formatContractOrderID(domain.ContractOrderOrder, 10))
}
