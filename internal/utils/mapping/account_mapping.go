package mapping

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		AccountNumber:   d.AccountNumber,
		Name:            d.Name,
		AccountType:     d.AccountType,
		ParentAccountID: d.ParentAccountID,
		SubAccountTag:   d.SubAccountTag,
		Description:     d.Description,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		UserID:          m.UserID,
		AccountNumber:   m.AccountNumber,
		Name:            m.Name,
		AccountType:     m.AccountType,
		ParentAccountID: m.ParentAccountID,
		SubAccountTag:   m.SubAccountTag,
		Description:     m.Description,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
