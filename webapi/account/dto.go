package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	OwnerName string `json:"owner_name" validate:"required,notblank,max=255"`
	Currency  string `json:"currency" validate:"required,oneof=USD EUR RUB"`
}

// DepositRequest represents the request body for depositing funds into an account.
type DepositRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"100.00"`
	Description string           `json:"description" validate:"max=255"`
}

// WithdrawRequest represents the request body for withdrawing funds from an account.
type WithdrawRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"50.00"`
	Description string           `json:"description" validate:"max=255"`
}

// TransferRequest represents the request body for transferring funds between accounts.
type TransferRequest struct {
	FromAccountID int64            `json:"from_account_id" validate:"required,gt=0"`
	ToAccountID   int64            `json:"to_account_id" validate:"required,gt=0"`
	Amount        *decimal.Decimal `json:"amount" validate:"required" swaggertype:"string" example:"25.00"`
	Description   string           `json:"description" validate:"max=255"`
}

// UpdateStatusRequest represents the request body for changing an account status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE BLOCKED CLOSED"`
}

// UpdateOwnerRequest represents the request body for renaming an account owner.
type UpdateOwnerRequest struct {
	OwnerName string `json:"owner_name" validate:"required,notblank,max=255"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"account_number"`
	Balance       string `json:"balance"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	OwnerName     string `json:"owner_name"`
	CreatedAt     string `json:"created_at"`
}

// TransactionDTO is the API response representation of a transaction.
type TransactionDTO struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	FromAccountID *int64 `json:"from_account_id,omitempty"`
	ToAccountID   *int64 `json:"to_account_id,omitempty"`
	Timestamp     string `json:"timestamp"`
	Description   string `json:"description"`
	Status        string `json:"status"`
}

// BalanceDTO is the API response for a balance query.
type BalanceDTO struct {
	AccountID int64  `json:"account_id"`
	Balance   string `json:"balance"`
}

// ToAccountDTO maps a domain account to an AccountDTO.
func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       money.Format(a.Balance),
		Currency:      a.Currency.String(),
		Status:        string(a.Status),
		OwnerName:     a.OwnerName,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
}

// ToTransactionDTO maps a journal entry to a TransactionDTO.
func ToTransactionDTO(tx *account.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:            tx.ID,
		Type:          string(tx.Type),
		Amount:        money.Format(tx.Amount),
		FromAccountID: tx.FromAccountID,
		ToAccountID:   tx.ToAccountID,
		Timestamp:     tx.Timestamp.Format(time.RFC3339Nano),
		Description:   tx.Description,
		Status:        string(tx.Status),
	}
}

// ToTransactionDTOs maps a list of journal entries.
func ToTransactionDTOs(txs []*account.Transaction) []*TransactionDTO {
	dtos := make([]*TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		dtos = append(dtos, ToTransactionDTO(tx))
	}
	return dtos
}

//revive:enable
