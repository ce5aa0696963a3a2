package mapping

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher (lines excluded).
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:       d.VoucherID,
		UserID:          d.UserID,
		VoucherNumber:   d.VoucherNumber,
		VoucherDate:     d.VoucherDate,
		TransactionType: d.TransactionType,
		Description:     d.Description,
		TotalAmount:     d.TotalAmount,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher (lines excluded).
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:       m.VoucherID,
		UserID:          m.UserID,
		VoucherNumber:   m.VoucherNumber,
		VoucherDate:     m.VoucherDate,
		TransactionType: m.TransactionType,
		Description:     m.Description,
		TotalAmount:     m.TotalAmount,
		Status:          domain.VoucherStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelVoucherLine converts a domain VoucherLine to a model VoucherLine
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:      d.LineID,
		VoucherID:   d.VoucherID,
		AccountID:   d.AccountID,
		IsDebit:     d.IsDebit,
		Amount:      d.Amount,
		Description: d.Description,
		LineNo:      d.LineNo,
	}
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:      m.LineID,
		VoucherID:   m.VoucherID,
		AccountID:   m.AccountID,
		IsDebit:     m.IsDebit,
		Amount:      m.Amount,
		Description: m.Description,
		LineNo:      m.LineNo,
	}
}

// ToDomainVoucherLineSlice converts a slice of model VoucherLines to domain VoucherLines
func ToDomainVoucherLineSlice(ms []models.VoucherLine) []domain.VoucherLine {
	ds := make([]domain.VoucherLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucherLine(m)
	}
	return ds
}
