package mapping

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/models"
)

// ToModelReceipt converts a domain Receipt to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:     d.ReceiptID,
		UserID:        d.UserID,
		ReceiptNumber: d.ReceiptNumber,
		Payer:         d.Payer,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		ReceiptDate:   d.ReceiptDate,
		Method:        d.Method,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReceipt converts a model Receipt to a domain Receipt
func ToDomainReceipt(m models.Receipt) domain.Receipt {
	return domain.Receipt{
		ReceiptID:     m.ReceiptID,
		UserID:        m.UserID,
		ReceiptNumber: m.ReceiptNumber,
		Payer:         m.Payer,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		ReceiptDate:   m.ReceiptDate,
		Method:        m.Method,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReceiptSlice converts a slice of model Receipts to domain Receipts
func ToDomainReceiptSlice(ms []models.Receipt) []domain.Receipt {
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReceipt(m)
	}
	return ds
}
