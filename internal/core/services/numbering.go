package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ediba/backoffice_app/internal/core/domain"
)

// documentPrefix returns the letter prefix used in formatted document numbers.
func documentPrefix(docType domain.DocumentType) string {
	switch docType {
	case domain.Proforma:
		return "D"
	case domain.Delivery:
		return "BL"
	case domain.Order:
		return "CMD"
	case domain.Invoice:
		return "F"
	default:
		return "DOC"
	}
}

// nextSequence computes the next free sequence number for (docType, year).
// It parses the trailing numeric segment of each matching document's
// reference (everything after the last '-'); unparsable references are
// skipped rather than treated as zero. Returns 1 when nothing matches.
func nextSequence(docs []domain.Document, docType domain.DocumentType, year int) int {
	max := 0
	for _, d := range docs {
		if d.Type != docType || d.Date.Year() != year {
			continue
		}
		idx := strings.LastIndex(d.Reference, "-")
		seq, err := strconv.Atoi(d.Reference[idx+1:])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1
}

// formatReference builds the raw reference string, e.g. "2025-0007".
func formatReference(year, seq int) string {
	return fmt.Sprintf("%d-%04d", year, seq)
}

// formatDocumentNumber builds the human document number, e.g. "N°F2500007":
// prefix, 2-digit year, 5-digit zero-padded sequence.
func formatDocumentNumber(docType domain.DocumentType, year, seq int) string {
	return fmt.Sprintf("N°%s%02d%05d", documentPrefix(docType), year%100, seq)
}
