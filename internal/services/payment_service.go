package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/RaulSimioni/Sistema-Academia/internal/models"
	"github.com/RaulSimioni/Sistema-Academia/internal/repository"
)

type clientReader interface {
	GetByName(ctx context.Context, name string) (*models.Client, error)
}

type paymentStore interface {
	Create(ctx context.Context, payment *models.Payment) error
	ExistsForClientOnDate(ctx context.Context, clientID int64, paidOn time.Time) (bool, error)
	ListByClient(ctx context.Context, clientID int64) ([]models.Payment, error)
}

type PaymentService struct {
	paymentRepo paymentStore
	clientRepo  clientReader
	planRepo    planReader
}

func NewPaymentService(paymentRepo paymentStore, clientRepo clientReader, planRepo planReader) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		planRepo:    planRepo,
	}
}

// Create records a payment for the named client. The amount is the plan's
// current monthly price, not a price frozen at signup. One payment per
// client per day: a second payment on the same date is a duplicate whatever
// its amount or plan.
func (s *PaymentService) Create(ctx context.Context, clientName, planName string, paidOn time.Time) (*models.Payment, error) {
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "client", Name: clientName}
		}
		return nil, storeErr(err)
	}
	plan, err := s.planRepo.GetByName(ctx, planName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "plan", Name: planName}
		}
		return nil, storeErr(err)
	}

	paidOn = truncateToDay(paidOn)
	exists, err := s.paymentRepo.ExistsForClientOnDate(ctx, client.ID, paidOn)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, &DuplicateError{Entity: "payment", Field: "date", Value: paidOn.Format("2006-01-02")}
	}

	payment := &models.Payment{
		ClientID: client.ID,
		PaidOn:   paidOn,
		Amount:   plan.MonthlyPrice,
		PlanID:   plan.ID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, &DuplicateError{Entity: "payment", Field: "date", Value: paidOn.Format("2006-01-02")}
		}
		return nil, storeErr(err)
	}
	return payment, nil
}

// ListForClient returns the named client's payments in paid-on order.
func (s *PaymentService) ListForClient(ctx context.Context, clientName string) ([]models.Payment, error) {
	client, err := s.clientRepo.GetByName(ctx, clientName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &UnresolvedError{Entity: "client", Name: clientName}
		}
		return nil, storeErr(err)
	}

	payments, err := s.paymentRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, storeErr(err)
	}
	return payments, nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
