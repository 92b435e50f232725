package account

import (
	"errors"
	"strconv"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/idempotency"
	"github.com/amirasaad/ledger/pkg/middleware"
	"github.com/amirasaad/ledger/pkg/money"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

var errInvalidAccountID = errors.New("account id must be a positive integer")

// Routes registers HTTP routes for account-related operations using the Fiber web framework.
// Money movements accept an Idempotency-Key header and replay the first successful response.
//
// Routes:
//   - POST   /account/create            : Open a new account.
//   - GET    /account/all               : List every account.
//   - POST   /account/transfer          : Move funds between two accounts.
//   - GET    /account/:id               : Fetch one account.
//   - GET    /account/:id/balance       : Fetch the balance of an account.
//   - POST   /account/:id/deposit       : Deposit funds into an account.
//   - POST   /account/:id/withdraw      : Withdraw funds from an account.
//   - GET    /account/:id/transactions  : List account transactions, optionally by ?type=.
//   - PUT    /account/:id/status        : Change the account status.
//   - PATCH  /account/:id/owner         : Rename the account owner.
//   - DELETE /account/:id               : Close the account.
func Routes(
	app *fiber.App,
	accountSvc *accountsvc.Service,
	tracker *idempotency.Tracker,
	cfg *config.App,
) {
	header := ""
	if cfg != nil && cfg.Idempotency != nil {
		header = cfg.Idempotency.Header
	}
	idempotent := middleware.Idempotency(tracker, header)

	app.Post("/account/create", CreateAccount(accountSvc))
	app.Get("/account/all", GetAllAccounts(accountSvc))
	app.Post("/account/transfer", idempotent, Transfer(accountSvc))
	app.Get("/account/:id", GetAccount(accountSvc))
	app.Get("/account/:id/balance", GetBalance(accountSvc))
	app.Post("/account/:id/deposit", idempotent, Deposit(accountSvc))
	app.Post("/account/:id/withdraw", idempotent, Withdraw(accountSvc))
	app.Get("/account/:id/transactions", GetTransactions(accountSvc))
	app.Put("/account/:id/status", UpdateStatus(accountSvc))
	app.Patch("/account/:id/owner", UpdateOwner(accountSvc))
	app.Delete("/account/:id", DeleteAccount(accountSvc))
}

func accountID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidAccountID
	}
	return id, nil
}

func invalidAccountID(c *fiber.Ctx, err error) error {
	log.Errorf("Invalid account ID %q: %v", c.Params("id"), err)
	return common.ProblemDetailsJSON(c, "Invalid account ID", err, fiber.StatusBadRequest)
}

// CreateAccount returns a Fiber handler that opens a new ACTIVE account.
// @Summary Open a new account
// @Description Opens an ACTIVE account with a zero balance for the given owner and currency.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/create [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.CreateAccount(c.UserContext(), input.OwnerName, money.Code(input.Currency))
		if err != nil {
			log.Errorf("Failed to create account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(a))
	}
}

// GetAllAccounts returns a Fiber handler listing every account ordered by id.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Success 200 {object} common.Response "Accounts fetched"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /account/all [get]
func GetAllAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := accountSvc.GetAllAccounts(c.UserContext())
		if err != nil {
			log.Errorf("Failed to list accounts: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to list accounts", err)
		}
		dtos := make([]*AccountDTO, 0, len(accounts))
		for _, a := range accounts {
			dtos = append(dtos, ToAccountDTO(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", dtos)
	}
}

// GetAccount returns a Fiber handler fetching one account.
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.Response "Account fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		a, err := accountSvc.GetAccount(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountDTO(a))
	}
}

// GetBalance returns a Fiber handler fetching the balance of an account.
// @Summary Get an account balance
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} common.Response "Balance fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid account ID"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/balance [get]
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		balance, err := accountSvc.GetBalance(c.UserContext(), id)
		if err != nil {
			log.Errorf("Failed to fetch balance for account ID %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched",
			BalanceDTO{AccountID: id, Balance: money.Format(balance)})
	}
}

// Deposit returns a Fiber handler crediting an account.
// @Summary Deposit funds into an account
// @Description Credits a positive amount with at most two fractional digits and journals a DEPOSIT.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param Idempotency-Key header string false "Replays the first successful response for the same key"
// @Param request body DepositRequest true "Deposit details"
// @Success 201 {object} common.Response "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 403 {object} common.ProblemDetails "Account is not active"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/deposit [post]
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Deposit handler: account %d, amount %s", id, input.Amount)
		tx, err := accountSvc.Deposit(c.UserContext(), id, *input.Amount, input.Description)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Deposit successful", ToTransactionDTO(tx))
	}
}

// Withdraw returns a Fiber handler debiting an account.
// @Summary Withdraw funds from an account
// @Description Debits a positive amount not exceeding the balance and journals a WITHDRAWAL.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param Idempotency-Key header string false "Replays the first successful response for the same key"
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 201 {object} common.Response "Withdrawal successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request or insufficient funds"
// @Failure 403 {object} common.ProblemDetails "Account is not active"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/withdraw [post]
func Withdraw(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Withdraw handler: account %d, amount %s", id, input.Amount)
		tx, err := accountSvc.Withdraw(c.UserContext(), id, *input.Amount, input.Description)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Withdrawal successful", ToTransactionDTO(tx))
	}
}

// Transfer returns a Fiber handler moving funds between two accounts.
// @Summary Transfer funds between accounts
// @Description Moves funds atomically and journals a single TRANSFER.
// @Tags accounts
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays the first successful response for the same key"
// @Param request body TransferRequest true "Transfer details"
// @Success 201 {object} common.Response "Transfer successful"
// @Failure 400 {object} common.ProblemDetails "Invalid request or insufficient funds"
// @Failure 403 {object} common.ProblemDetails "Account is not active"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/transfer [post]
func Transfer(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err // error response already written
		}
		log.Infof("Transfer handler: from %d to %d, amount %s", input.FromAccountID, input.ToAccountID, input.Amount)
		tx, err := accountSvc.Transfer(
			c.UserContext(),
			input.FromAccountID,
			input.ToAccountID,
			*input.Amount,
			input.Description,
		)
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transfer successful", ToTransactionDTO(tx))
	}
}

// GetTransactions returns a Fiber handler listing the account's transactions, newest first.
// @Summary List account transactions
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Param type query string false "Transaction type" Enums(DEPOSIT, WITHDRAWAL, TRANSFER)
// @Success 200 {object} common.Response "Transactions fetched"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/transactions [get]
func GetTransactions(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}

		var txs []*account.Transaction
		if raw := c.Query("type"); raw != "" {
			txType, perr := account.ParseTransactionType(raw)
			if perr != nil {
				return common.ProblemDetailsJSON(c, "Invalid transaction type", perr)
			}
			txs, err = accountSvc.GetAccountTransactionsByType(c.UserContext(), id, txType)
		} else {
			txs, err = accountSvc.GetAccountTransactions(c.UserContext(), id)
		}
		if err != nil {
			log.Errorf("Failed to list transactions for account ID %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", ToTransactionDTOs(txs))
	}
}

// UpdateStatus returns a Fiber handler changing the account status.
// @Summary Change an account status
// @Description CLOSED is terminal; closing requires a zero balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} common.Response "Status updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/status [put]
func UpdateStatus(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		input, err := common.BindAndValidate[UpdateStatusRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.UpdateAccountStatus(c.UserContext(), id, account.Status(input.Status))
		if err != nil {
			log.Errorf("Failed to update status of account ID %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Status updated", ToAccountDTO(a))
	}
}

// UpdateOwner returns a Fiber handler renaming the account owner.
// @Summary Rename an account owner
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body UpdateOwnerRequest true "New owner"
// @Success 200 {object} common.Response "Owner updated"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id}/owner [patch]
func UpdateOwner(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		input, err := common.BindAndValidate[UpdateOwnerRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.UpdateAccountOwner(c.UserContext(), id, input.OwnerName)
		if err != nil {
			log.Errorf("Failed to update owner of account ID %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to update owner", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Owner updated", ToAccountDTO(a))
	}
}

// DeleteAccount returns a Fiber handler closing an account. Accounts are never removed.
// @Summary Close an account
// @Tags accounts
// @Param id path int true "Account ID"
// @Success 204 "Account closed"
// @Failure 400 {object} common.ProblemDetails "Account has a balance or is already closed"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /account/{id} [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := accountID(c)
		if err != nil {
			return invalidAccountID(c, err)
		}
		if err := accountSvc.DeleteAccount(c.UserContext(), id); err != nil {
			log.Errorf("Failed to close account ID %d: %v", id, err)
			return common.ProblemDetailsJSON(c, "Failed to close account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
