package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AGASocial/bottcierge/internal/events"
	"github.com/AGASocial/bottcierge/internal/logging"
	"github.com/AGASocial/bottcierge/internal/models"
	"github.com/AGASocial/bottcierge/internal/repo"
)

type TableService struct {
	Tables   repo.Tables
	Producer *events.Producer
}

type ReservationInput struct {
	UserID          string    `json:"userId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	MinimumSpend    float64   `json:"minimumSpend"`
	SpecialRequests string    `json:"specialRequests"`
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	return s.Tables.List(ctx)
}

func (s *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	table, err := s.Tables.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "table")
	}
	return table, nil
}

func (s *TableService) GetByQR(ctx context.Context, code string) (*models.Table, error) {
	table, err := s.Tables.GetByQR(ctx, code)
	if err != nil {
		return nil, fromDB(err, "table")
	}
	return table, nil
}

func (s *TableService) UpdateStatus(ctx context.Context, id string, status models.TableStatus) (*models.Table, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown table status %q", ErrValidation, status)
	}

	table, err := s.Tables.Get(ctx, id)
	if err != nil {
		return nil, fromDB(err, "table")
	}

	table.Status = status
	if err := s.Tables.Save(ctx, table); err != nil {
		return nil, err
	}

	s.publish(ctx, table.ID, map[string]any{
		"type":    "table_status_changed",
		"tableId": table.ID,
		"status":  table.Status,
	})
	return table, nil
}

// Reserve places a reservation on an available table.
func (s *TableService) Reserve(ctx context.Context, tableID string, in ReservationInput) (*models.Table, error) {
	table, err := s.Tables.Get(ctx, tableID)
	if err != nil {
		return nil, fromDB(err, "table")
	}
	if table.Status != models.TableAvailable {
		return nil, fmt.Errorf("%w: table is not available", ErrValidation)
	}

	table.Reservation = &models.TableReservation{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		StartTime:       in.StartTime,
		EndTime:         in.EndTime,
		MinimumSpend:    in.MinimumSpend,
		SpecialRequests: in.SpecialRequests,
	}
	table.Status = models.TableReserved
	if err := s.Tables.Save(ctx, table); err != nil {
		return nil, err
	}

	s.publish(ctx, table.ID, map[string]any{
		"type":          "table_reserved",
		"tableId":       table.ID,
		"reservationId": table.Reservation.ID,
	})
	return table, nil
}

// CancelReservation clears a reservation whose id matches and frees the
// table, logging the slot into the reservation history.
func (s *TableService) CancelReservation(ctx context.Context, tableID, reservationID string) (*models.Table, error) {
	table, err := s.Tables.Get(ctx, tableID)
	if err != nil {
		return nil, fromDB(err, "table")
	}
	if table.Reservation == nil || table.Reservation.ID != reservationID {
		return nil, fmt.Errorf("%w: reservation", ErrNotFound)
	}

	table.ReservationHistory = append(table.ReservationHistory, models.ReservationHistory{
		ID:   table.Reservation.ID,
		Date: table.Reservation.StartTime,
	})
	table.Reservation = nil
	table.Status = models.TableAvailable
	if err := s.Tables.Save(ctx, table); err != nil {
		return nil, err
	}

	s.publish(ctx, table.ID, map[string]any{
		"type":          "reservation_cancelled",
		"tableId":       table.ID,
		"reservationId": reservationID,
	})
	return table, nil
}

func (s *TableService) publish(ctx context.Context, key string, event map[string]any) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pctx, events.TopicTables, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish", "topic", events.TopicTables, "error", err)
	}
}
