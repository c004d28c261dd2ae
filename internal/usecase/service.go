package usecase

import (
	"bus-booking/internal/data/repository"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Bus     BusService
	Seat    SeatService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	googleVerifier := utils.NewGoogleVerifier(config.Google.ClientID)

	return &Service{
		Auth:    NewAuthService(repo, config, googleVerifier, log),
		User:    NewUserService(repo.User, log),
		Bus:     NewBusService(repo, log),
		Seat:    NewSeatService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
