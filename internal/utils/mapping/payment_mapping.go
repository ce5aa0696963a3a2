package mapping

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment (lines excluded).
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		UserID:        d.UserID,
		PaymentNumber: d.PaymentNumber,
		PaymentDate:   d.PaymentDate,
		Payee:         d.Payee,
		Method:        d.Method,
		AccountID:     d.AccountID,
		TotalAmount:   d.TotalAmount,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment (lines excluded).
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		UserID:        m.UserID,
		PaymentNumber: m.PaymentNumber,
		PaymentDate:   m.PaymentDate,
		Payee:         m.Payee,
		Method:        m.Method,
		AccountID:     m.AccountID,
		TotalAmount:   m.TotalAmount,
		Status:        domain.PaymentStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentLine converts a model PaymentLine to a domain PaymentLine
func ToDomainPaymentLine(m models.PaymentLine) domain.PaymentLine {
	return domain.PaymentLine{
		LineID:     m.LineID,
		PaymentID:  m.PaymentID,
		VoucherID:  m.VoucherID,
		AmountPaid: m.AmountPaid,
	}
}

// ToDomainPaymentLineSlice converts model PaymentLines to domain PaymentLines
func ToDomainPaymentLineSlice(ms []models.PaymentLine) []domain.PaymentLine {
	ds := make([]domain.PaymentLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentLine(m)
	}
	return ds
}

// ToDomainPaymentAttachment converts a model PaymentAttachment to domain
func ToDomainPaymentAttachment(m models.PaymentAttachment) domain.PaymentAttachment {
	return domain.PaymentAttachment{
		AttachmentID: m.AttachmentID,
		PaymentID:    m.PaymentID,
		FileName:     m.FileName,
		ContentType:  m.ContentType,
		URL:          m.URL,
	}
}

// ToDomainPaymentAttachmentSlice converts model attachments to domain
func ToDomainPaymentAttachmentSlice(ms []models.PaymentAttachment) []domain.PaymentAttachment {
	ds := make([]domain.PaymentAttachment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentAttachment(m)
	}
	return ds
}
