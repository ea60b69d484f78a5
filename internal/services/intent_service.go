package services

import (
	"context"
	"fmt"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/repositories"
	"busbook/internal/utils"
)

// IntentService records travel intents. Intents never touch seat counts.
type IntentService struct {
	Buses   repositories.BusRepository
	Intents repositories.IntentRepository
}

func (s IntentService) Record(ctx context.Context, studentID string, busID int64) (models.Intent, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return models.Intent{}, domain.ValidationError{Field: "student_id", Msg: "required"}
	}
	if _, err := s.Buses.Get(ctx, busID); err != nil {
		return models.Intent{}, err
	}
	it := models.Intent{StudentID: studentID, BusID: busID, SeatReserved: false}
	id, err := s.Intents.Insert(ctx, it)
	if err != nil {
		return models.Intent{}, err
	}
	it.ID = id
	utils.LogEvent(utils.RequestIDFrom(ctx), "intent", "record", fmt.Sprintf("intent_id=%d bus_id=%d", id, busID))
	return it, nil
}
