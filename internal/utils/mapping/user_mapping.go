package mapping

import (
	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/finbooks/finbooks_app/internal/models"
)

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = &m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiry = &t
	}
	return d
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.RefreshTokenHash != nil {
		m.RefreshTokenHash.Valid = true
		m.RefreshTokenHash.String = *d.RefreshTokenHash
	}
	if d.RefreshTokenExpiry != nil {
		m.RefreshTokenExpiryTime.Valid = true
		m.RefreshTokenExpiryTime.Time = *d.RefreshTokenExpiry
	}
	return m
}
