package handler

import (
	"context"

	"github.com/za-dev/roomfinder-service/internal/model"
	"github.com/za-dev/roomfinder-service/internal/service"
	"github.com/za-dev/roomfinder-service/pkg/s3"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingService interface {
	RegisterClient(ctx context.Context, client model.Client) error
	ClientLogin(ctx context.Context, clientID int) (model.Client, error)
	BookRoom(ctx context.Context, req model.BookingRequest) (model.RoomPrice, error)
	PayForBooking(ctx context.Context, req model.RoomPaymentRequest) (int, error)
	RescheduleBooking(ctx context.Context, bookingID int, req model.BookingRequest) (model.RoomPrice, error)
	PayForReschedule(ctx context.Context, bookingID int, fee float64, req model.BookingRequest) error
	CancelBooking(ctx context.Context, bookingID, clientID int) (float64, error)
	BookedRooms(ctx context.Context) []model.BookedRoom
	UploadProfilePhoto(ctx context.Context, photo model.ClientPhoto) error
	ProfilePhoto(ctx context.Context, clientID int) (model.ClientPhoto, error)
}

type Bucket interface {
	SignedUploadURL(ctx context.Context) (string, error)
}

var (
	_ BookingService = (*service.Service)(nil)
	_ Bucket         = (*s3.Bucket)(nil)
)
