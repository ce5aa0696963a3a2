package services

import (
	portsrepo "github.com/finbooks/finbooks_app/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_app/internal/core/ports/services"
	"github.com/finbooks/finbooks_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo, repos.ReportingRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.AccountRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.AccountRepo, repos.PaymentRepo)
	container.Receipt = NewReceiptService(repos.ReceiptRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.AccountRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewTokenService(cfg, container.User)

	return container
}
