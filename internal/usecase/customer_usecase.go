package usecase

import (
	"context"

	"orchard/internal/domain/entity"

	"github.com/google/uuid"
)

// Merge reasons returned by compatibility checks.
const (
	MergeReasonSameAccount  = "same_account"
	MergeReasonNameMismatch = "name_mismatch"
)

// EnsureCustomerInput identifies or describes the customer to resolve. At
// least one identifier must be present.
type EnsureCustomerInput struct {
	Phone      string         `json:"phone,omitempty"`
	Email      string         `json:"email,omitempty"`
	Name       string         `json:"name,omitempty"`
	AuthUserID *uuid.UUID     `json:"auth_user_id,omitempty"`
	SessionID  string         `json:"session_id,omitempty"`
	Allergies  []string       `json:"allergies,omitempty"`
	Dietary    []string       `json:"dietary_restrictions,omitempty"`
	Prefs      map[string]any `json:"preferences,omitempty"`
}

// EnsureCustomerResult is the resolved customer and whether it was created.
type EnsureCustomerResult struct {
	Customer *entity.Customer
	Created  bool
}

// MergeAccountSummary describes one side of a merge check.
type MergeAccountSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Orders  int64     `json:"orders"`
	HasAuth bool      `json:"has_auth"`
}

// MergeCheckResult is the outcome of a merge compatibility check.
type MergeCheckResult struct {
	CanMerge              bool                           `json:"can_merge"`
	Reason                string                         `json:"reason,omitempty"`
	PrimaryAccount        string                         `json:"primary_account,omitempty"`
	Accounts              map[string]MergeAccountSummary `json:"accounts,omitempty"`
	TotalOrdersAfterMerge int64                          `json:"total_orders_after_merge,omitempty"`
	MergeStrategy         string                         `json:"merge_strategy,omitempty"`
}

// MergeResult is the outcome of a performed merge.
type MergeResult struct {
	Success            bool      `json:"success"`
	PrimaryAccountID   uuid.UUID `json:"primary_account_id"`
	SecondaryAccountID uuid.UUID `json:"secondary_account_id"`
	OrdersTransferred  int64     `json:"orders_transferred"`
	TotalOrders        int64     `json:"total_orders"`
	MergeStrategy      string    `json:"merge_strategy"`
	Message            string    `json:"message"`
}

// CustomerUsecase defines the customer management use cases.
type CustomerUsecase interface {
	// EnsureCustomer resolves a customer by phone, email, auth identity, or
	// chatbot session, creating a temp-email record when none exists. Missing
	// profile fields on an existing record are filled from the input.
	EnsureCustomer(ctx context.Context, input *EnsureCustomerInput) (*EnsureCustomerResult, error)

	// GetCustomerOrders returns the customer's most recent orders.
	GetCustomerOrders(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error)

	// CheckMergeCompatibility decides whether a phone-keyed and an email-keyed
	// identity can be unified, and which side survives.
	CheckMergeCompatibility(ctx context.Context, phone, email string) (*MergeCheckResult, error)

	// MergeAccounts unifies the two identities in one transaction: orders are
	// re-pointed, profile sets unioned, and the secondary email archived.
	MergeAccounts(ctx context.Context, phone, email, source string) (*MergeResult, error)
}
