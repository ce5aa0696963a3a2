package services_test

import (
	"context"
	"time"

	"github.com/finbooks/finbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, userID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, userID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, userID, accountID string) error {
	args := m.Called(ctx, userID, accountID)
	return args.Error(0)
}

// --- Mock VoucherRepository ---

type MockVoucherRepository struct {
	mock.Mock
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, userID, voucherID string) (*domain.Voucher, error) {
	args := m.Called(ctx, userID, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) FindVoucherLines(ctx context.Context, voucherID string) ([]domain.VoucherLine, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VoucherLine), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var vouchers []domain.Voucher
	if args.Get(0) != nil {
		vouchers = args.Get(0).([]domain.Voucher)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return vouchers, token, args.Error(2)
}

func (m *MockVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.VoucherLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) UpdateVoucherStatus(ctx context.Context, userID, voucherID string, status domain.VoucherStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, voucherID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, userID, voucherID string) error {
	args := m.Called(ctx, userID, voucherID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, userID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, userID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentLines(ctx context.Context, paymentID string) ([]domain.PaymentLine, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentLine), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentAttachments(ctx context.Context, paymentID string) ([]domain.PaymentAttachment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentAttachment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

func (m *MockPaymentRepository) PaidTotalForVoucher(ctx context.Context, voucherID string) (decimal.Decimal, error) {
	args := m.Called(ctx, voucherID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error {
	args := m.Called(ctx, payment, lines, attachments)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment, lines []domain.PaymentLine, attachments []domain.PaymentAttachment) error {
	args := m.Called(ctx, payment, lines, attachments)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, userID, paymentID string) error {
	args := m.Called(ctx, userID, paymentID)
	return args.Error(0)
}

func (m *MockPaymentRepository) RecomputeVoucherStatus(ctx context.Context, userID, voucherID string) (domain.VoucherStatus, error) {
	args := m.Called(ctx, userID, voucherID)
	return args.Get(0).(domain.VoucherStatus), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAccountActivity(ctx context.Context, userID string, fromDate *time.Time, toDate time.Time) ([]domain.AccountActivity, error) {
	args := m.Called(ctx, userID, fromDate, toDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountActivity), args.Error(1)
}

func (m *MockReportingRepository) GetJournalLines(ctx context.Context, userID string, fromDate, toDate time.Time, accountID *string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, userID, fromDate, toDate, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockReportingRepository) SumAccountActivity(ctx context.Context, userID, accountID string, afterDate *time.Time, untilDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID, afterDate, untilDate)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) SumAccountActivityBefore(ctx context.Context, userID, accountID string, beforeDate time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, userID, accountID, beforeDate)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

// MockReceiptRepository is a mock implementation of the ReceiptRepositoryFacade.
type MockReceiptRepository struct {
	mock.Mock
}

func (m *MockReceiptRepository) FindReceiptByID(ctx context.Context, userID, receiptID string) (*domain.Receipt, error) {
	args := m.Called(ctx, userID, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepository) ListReceipts(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.Receipt, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var receipts []domain.Receipt
	if args.Get(0) != nil {
		receipts = args.Get(0).([]domain.Receipt)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return receipts, token, args.Error(2)
}

func (m *MockReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt, expectedUpdatedAt time.Time) error {
	args := m.Called(ctx, receipt, expectedUpdatedAt)
	return args.Error(0)
}

func (m *MockReceiptRepository) DeleteReceipt(ctx context.Context, userID, receiptID string) error {
	args := m.Called(ctx, userID, receiptID)
	return args.Error(0)
}
