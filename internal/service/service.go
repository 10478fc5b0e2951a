package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/internal/model"
	"github.com/za-dev/roomfinder-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) RegisterClient(ctx context.Context, client model.Client) error {
	return s.repo.RegisterClient(ctx, client)
}

func (s *Service) ClientLogin(ctx context.Context, clientID int) (model.Client, error) {
	return s.repo.ClientLogin(ctx, clientID)
}

func (s *Service) BookRoom(ctx context.Context, req model.BookingRequest) (model.RoomPrice, error) {
	return s.repo.QuoteBooking(ctx, req)
}

func (s *Service) PayForBooking(ctx context.Context, req model.RoomPaymentRequest) (int, error) {
	return s.repo.ConfirmBooking(ctx, req)
}

func (s *Service) RescheduleBooking(ctx context.Context, bookingID int, req model.BookingRequest) (model.RoomPrice, error) {
	return s.repo.QuoteReschedule(ctx, bookingID, req)
}

func (s *Service) PayForReschedule(ctx context.Context, bookingID int, fee float64, req model.BookingRequest) error {
	return s.repo.ConfirmReschedule(ctx, bookingID, fee, req)
}

func (s *Service) CancelBooking(ctx context.Context, bookingID, clientID int) (float64, error) {
	return s.repo.CancelBooking(ctx, bookingID, clientID)
}

func (s *Service) BookedRooms(ctx context.Context) []model.BookedRoom {
	return s.repo.BookedRooms(ctx)
}

func (s *Service) UploadProfilePhoto(ctx context.Context, photo model.ClientPhoto) error {
	return s.repo.SaveProfilePhoto(ctx, photo)
}

func (s *Service) ProfilePhoto(ctx context.Context, clientID int) (model.ClientPhoto, error) {
	return s.repo.ProfilePhoto(ctx, clientID)
}
