package pgsql

import (
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	voucherRepo := newPgxVoucherRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	receiptRepo := newPgxReceiptRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		VoucherRepo:   voucherRepo,
		PaymentRepo:   paymentRepo,
		ReceiptRepo:   receiptRepo,
		ReportingRepo: reportingRepo,
		UserRepo:      userRepo,
	}
}
