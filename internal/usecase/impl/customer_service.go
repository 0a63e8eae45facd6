package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliveryctx "orchard/internal/delivery/context"
	"orchard/internal/domain/entity"
	domainerrors "orchard/internal/domain/errors"
	"orchard/internal/domain/repository"
	"orchard/internal/domain/service"
	"orchard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOrderHistoryLimit = 5

// Merge strategy labels carried in the merge result and audit entry.
const (
	mergeStrategyPhonePrimary = "phone_primary"
	mergeStrategyEmailPrimary = "email_primary"
)

type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewCustomerService creates a new customer service instance
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// EnsureCustomer resolves or creates the customer for a chatbot interaction.
func (s *customerService) EnsureCustomer(ctx context.Context, input *usecase.EnsureCustomerInput) (*usecase.EnsureCustomerResult, error) {
	customer, created, err := ensureCustomer(ctx, s.customerRepo, input)
	if err != nil {
		return nil, err
	}

	return &usecase.EnsureCustomerResult{Customer: customer, Created: created}, nil
}

// GetCustomerOrders returns the customer's most recent orders.
func (s *customerService) GetCustomerOrders(ctx context.Context, customerID uuid.UUID, limit int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = defaultOrderHistoryLimit
	}

	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	orders, err := s.orderRepo.FindRecentByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent orders")
	}

	return orders, nil
}

// CheckMergeCompatibility decides whether the phone-keyed and email-keyed
// identities can be unified and which side survives.
func (s *customerService) CheckMergeCompatibility(ctx context.Context, phone, email string) (*usecase.MergeCheckResult, error) {
	if phone == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phone and email are both required")
	}

	phoneCustomer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithDetails(
				fmt.Sprintf("no customer with phone %s", phone))
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	emailCustomer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithDetails(
				fmt.Sprintf("no customer with email %s", email))
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	if phoneCustomer.ID == emailCustomer.ID {
		return &usecase.MergeCheckResult{
			CanMerge: false,
			Reason:   usecase.MergeReasonSameAccount,
		}, nil
	}

	if !entity.NamesCompatible(phoneCustomer.Name, emailCustomer.Name) {
		return &usecase.MergeCheckResult{
			CanMerge: false,
			Reason:   usecase.MergeReasonNameMismatch,
		}, nil
	}

	phoneOrders, err := s.orderRepo.CountByCustomer(ctx, phoneCustomer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count phone account orders")
	}
	emailOrders, err := s.orderRepo.CountByCustomer(ctx, emailCustomer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count email account orders")
	}

	primary := selectPrimaryAccount(phoneCustomer, emailCustomer, phoneOrders, emailOrders)
	strategy := mergeStrategyPhonePrimary
	if primary == "email" {
		strategy = mergeStrategyEmailPrimary
	}

	return &usecase.MergeCheckResult{
		CanMerge:       true,
		PrimaryAccount: primary,
		Accounts: map[string]usecase.MergeAccountSummary{
			"phone": {
				ID:      phoneCustomer.ID,
				Name:    phoneCustomer.Name,
				Orders:  phoneOrders,
				HasAuth: phoneCustomer.HasAuth(),
			},
			"email": {
				ID:      emailCustomer.ID,
				Name:    emailCustomer.Name,
				Orders:  emailOrders,
				HasAuth: emailCustomer.HasAuth(),
			},
		},
		TotalOrdersAfterMerge: phoneOrders + emailOrders,
		MergeStrategy:         strategy,
	}, nil
}

// MergeAccounts unifies the two identities inside one transaction: the
// secondary side's orders are re-pointed, profile sets unioned, preferences
// merged with an audit entry, and the secondary email archived.
func (s *customerService) MergeAccounts(ctx context.Context, phone, email, source string) (*usecase.MergeResult, error) {
	check, err := s.CheckMergeCompatibility(ctx, phone, email)
	if err != nil {
		return nil, err
	}
	if !check.CanMerge {
		return nil, domainerrors.ErrMergeIncompatible.WithDetails(check.Reason)
	}

	var result *usecase.MergeResult
	var primaryID uuid.UUID

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		phoneCustomer, err := f.CustomerRepo().FindByPhone(ctx, phone)
		if err != nil {
			return errors.Wrap(err, "failed to re-read phone account")
		}
		emailCustomer, err := f.CustomerRepo().FindByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to re-read email account")
		}

		primary, secondary := phoneCustomer, emailCustomer
		if check.PrimaryAccount == "email" {
			primary, secondary = emailCustomer, phoneCustomer
		}
		primaryID = primary.ID

		transferred, err := f.OrderRepo().ReassignCustomer(ctx, secondary.ID, primary.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reassign orders")
		}

		// Archive the secondary email first so the primary can inherit it
		// without tripping the unique constraint.
		if err := f.CustomerRepo().Patch(ctx, secondary.ID, map[string]any{
			"email": secondary.ArchivedEmail(),
		}); err != nil {
			return errors.Wrap(err, "failed to archive secondary email")
		}

		mergeCustomerProfiles(primary, secondary, check.MergeStrategy, source)

		if err := f.CustomerRepo().Update(ctx, primary); err != nil {
			return errors.Wrap(err, "failed to update primary account")
		}

		total, err := f.OrderRepo().CountByCustomer(ctx, primary.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count merged orders")
		}

		result = &usecase.MergeResult{
			Success:            true,
			PrimaryAccountID:   primary.ID,
			SecondaryAccountID: secondary.ID,
			OrdersTransferred:  transferred,
			TotalOrders:        total,
			MergeStrategy:      check.MergeStrategy,
			Message: fmt.Sprintf("Accounts merged successfully; %d orders transferred",
				transferred),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishMergedEvent(ctx, primaryID)

	return result, nil
}

func (s *customerService) publishMergedEvent(ctx context.Context, customerID uuid.UUID) {
	event := &service.OrderEvent{
		RequestID:  deliveryctx.GetRequestIDFromContext(ctx),
		EventType:  service.OrderEventMerged,
		CustomerID: customerID.String(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		deliveryctx.GetLoggerOrDefault(ctx, s.logger).Error("failed to publish merge event",
			slog.String("customer_id", customerID.String()),
			slog.Any("error", err),
		)
	}
}

// selectPrimaryAccount applies the survivor policy: an auth-linked side wins,
// then the side with strictly more orders, then the phone side by default.
func selectPrimaryAccount(phoneCustomer, emailCustomer *entity.Customer, phoneOrders, emailOrders int64) string {
	switch {
	case phoneCustomer.HasAuth() && !emailCustomer.HasAuth():
		return "phone"
	case emailCustomer.HasAuth() && !phoneCustomer.HasAuth():
		return "email"
	case emailOrders > phoneOrders:
		return "email"
	default:
		return "phone"
	}
}

// mergeCustomerProfiles folds the secondary account's profile into the
// primary: set-union of allergies and dietary restrictions, auth linkage from
// either side, preference map merge with an audit entry.
func mergeCustomerProfiles(primary, secondary *entity.Customer, strategy, source string) {
	primary.Allergies = entity.MergeStringSets(primary.Allergies, secondary.Allergies)
	primary.DietaryRestrictions = entity.MergeStringSets(primary.DietaryRestrictions, secondary.DietaryRestrictions)

	if !primary.HasAuth() && secondary.HasAuth() {
		primary.AuthUserID = secondary.AuthUserID
	}
	if primary.Name == "" {
		primary.Name = secondary.Name
	}
	if primary.Phone == "" {
		primary.Phone = secondary.Phone
	}
	if primary.IsTempEmail() && !secondary.IsTempEmail() {
		primary.Email = secondary.Email
	}

	merged := make(map[string]any, len(primary.Preferences)+len(secondary.Preferences)+1)
	for key, value := range secondary.Preferences {
		merged[key] = value
	}
	for key, value := range primary.Preferences {
		merged[key] = value
	}
	merged["merge_audit"] = map[string]any{
		"merged_at":      time.Now().UTC().Format(time.RFC3339),
		"merged_from":    secondary.ID.String(),
		"merge_strategy": strategy,
		"merge_source":   source,
		"account_sources": map[string]any{
			"primary":   primary.ID.String(),
			"secondary": secondary.ID.String(),
		},
	}
	primary.Preferences = merged
}

// ensureCustomer resolves a customer by phone, email, auth identity, or
// chatbot session, creating a temp-email record when none exists. Missing
// profile fields on an existing record are filled from the input.
func ensureCustomer(ctx context.Context, customerRepo repository.CustomerRepository, input *usecase.EnsureCustomerInput) (*entity.Customer, bool, error) {
	if input.Phone == "" && input.Email == "" && input.AuthUserID == nil && input.SessionID == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithDetails(
			"phone, email, auth user id, or session id is required")
	}

	customer, err := lookupCustomer(ctx, customerRepo, input)
	if err != nil {
		return nil, false, err
	}

	if customer != nil {
		if err := fillMissingCustomerFields(ctx, customerRepo, customer, input); err != nil {
			return nil, false, err
		}

		return customer, false, nil
	}

	customer = newCustomerFromInput(input)
	if err := customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return nil, false, domainerrors.ErrCustomerAlreadyExists
		}

		return nil, false, err
	}

	return customer, true, nil
}

// lookupCustomer tries each identifier in priority order. A nil customer with
// a nil error means no record matched.
func lookupCustomer(ctx context.Context, customerRepo repository.CustomerRepository, input *usecase.EnsureCustomerInput) (*entity.Customer, error) {
	type lookup struct {
		enabled bool
		find    func() (*entity.Customer, error)
	}

	lookups := []lookup{
		{input.Phone != "", func() (*entity.Customer, error) {
			return customerRepo.FindByPhone(ctx, input.Phone)
		}},
		{input.Email != "", func() (*entity.Customer, error) {
			return customerRepo.FindByEmail(ctx, input.Email)
		}},
		{input.AuthUserID != nil, func() (*entity.Customer, error) {
			return customerRepo.FindByAuthUserID(ctx, *input.AuthUserID)
		}},
		{input.SessionID != "", func() (*entity.Customer, error) {
			return customerRepo.FindBySessionID(ctx, input.SessionID)
		}},
	}

	for _, l := range lookups {
		if !l.enabled {
			continue
		}
		customer, err := l.find()
		if err == nil {
			return customer, nil
		}
		if !errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(err, "failed to look up customer")
		}
	}

	return nil, nil
}

// fillMissingCustomerFields patches identity fields the record is missing:
// a real email over a temp placeholder, a phone, a name, new allergy or
// dietary entries, and the chatbot session id.
func fillMissingCustomerFields(ctx context.Context, customerRepo repository.CustomerRepository, customer *entity.Customer, input *usecase.EnsureCustomerInput) error {
	changed := false

	if input.Email != "" && customer.IsTempEmail() {
		customer.Email = input.Email
		changed = true
	}
	if input.Phone != "" && customer.Phone == "" {
		customer.Phone = input.Phone
		changed = true
	}
	if input.Name != "" && customer.Name == "" {
		customer.Name = input.Name
		changed = true
	}
	if input.AuthUserID != nil && !customer.HasAuth() {
		customer.AuthUserID = input.AuthUserID
		changed = true
	}
	if len(input.Allergies) > 0 {
		merged := entity.MergeStringSets(customer.Allergies, input.Allergies)
		if len(merged) != len(customer.Allergies) {
			customer.Allergies = merged
			changed = true
		}
	}
	if len(input.Dietary) > 0 {
		merged := entity.MergeStringSets(customer.DietaryRestrictions, input.Dietary)
		if len(merged) != len(customer.DietaryRestrictions) {
			customer.DietaryRestrictions = merged
			changed = true
		}
	}
	if input.SessionID != "" {
		if customer.Preferences == nil {
			customer.Preferences = make(map[string]any)
		}
		if customer.Preferences["session_id"] != input.SessionID {
			customer.Preferences["session_id"] = input.SessionID
			changed = true
		}
	}

	if !changed {
		return nil
	}

	if err := customerRepo.Update(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicateCustomer) {
			return domainerrors.ErrCustomerAlreadyExists
		}

		return errors.Wrap(err, "failed to update customer")
	}

	return nil
}

// newCustomerFromInput builds a new customer record, generating a temp email
// for phone-only accounts.
func newCustomerFromInput(input *usecase.EnsureCustomerInput) *entity.Customer {
	email := input.Email
	if email == "" {
		email = entity.NewTempEmail(time.Now())
	}

	preferences := make(map[string]any, len(input.Prefs)+1)
	for key, value := range input.Prefs {
		preferences[key] = value
	}
	if input.SessionID != "" {
		preferences["session_id"] = input.SessionID
	}

	return &entity.Customer{
		ID:                  uuid.New(),
		Email:               email,
		Phone:               input.Phone,
		Name:                input.Name,
		Allergies:           entity.MergeStringSets(input.Allergies, nil),
		DietaryRestrictions: entity.MergeStringSets(input.Dietary, nil),
		Preferences:         preferences,
		AuthUserID:          input.AuthUserID,
	}
}
