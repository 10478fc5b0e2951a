package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/internal/errs"
	"github.com/za-dev/roomfinder-service/internal/model"
)

type Repository interface {
	RegisterClient(ctx context.Context, client model.Client) error
	ClientLogin(ctx context.Context, clientID int) (model.Client, error)
	Clients(ctx context.Context) []model.Client

	QuoteBooking(ctx context.Context, req model.BookingRequest) (model.RoomPrice, error)
	ConfirmBooking(ctx context.Context, req model.RoomPaymentRequest) (int, error)
	QuoteReschedule(ctx context.Context, bookingID int, req model.BookingRequest) (model.RoomPrice, error)
	ConfirmReschedule(ctx context.Context, bookingID int, fee float64, req model.BookingRequest) error
	CancelBooking(ctx context.Context, bookingID, clientID int) (float64, error)
	BookedRooms(ctx context.Context) []model.BookedRoom

	SaveProfilePhoto(ctx context.Context, photo model.ClientPhoto) error
	ProfilePhoto(ctx context.Context, clientID int) (model.ClientPhoto, error)
}

// MaxRoomsPerWeek caps how many bookings a client may hold
// with a start date inside one ISO week.
const MaxRoomsPerWeek = 5

// repository is the in-memory booking ledger. One RWMutex guards the
// client registry, the booked-room table and id allocation: quotes take
// the read lock, every commit takes the write lock and re-validates, so
// of two racing confirms for conflicting dates exactly one lands.
type repository struct {
	log *zap.Logger

	mu            sync.RWMutex
	clients       map[int]model.Client
	rooms         map[int]model.BookedRoom
	photos        map[int]model.ClientPhoto
	nextBookingID int
}

func NewRepository(log *zap.Logger) *repository {
	return &repository{
		log:           log.Named("ledger"),
		clients:       make(map[int]model.Client),
		rooms:         make(map[int]model.BookedRoom),
		photos:        make(map[int]model.ClientPhoto),
		nextBookingID: 1,
	}
}

func (r *repository) RegisterClient(_ context.Context, client model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.IDNumber]; ok {
		return errors.Wrapf(errs.ErrClientRegistered, "id number %d", client.IDNumber)
	}
	r.clients[client.IDNumber] = client
	r.log.Debug("client registered", zap.Int("id", client.IDNumber))
	return nil
}

func (r *repository) ClientLogin(_ context.Context, clientID int) (model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[clientID]
	if !ok {
		return model.Client{}, errors.Wrapf(errs.ErrClientNotFound, "id number %d", clientID)
	}
	return client, nil
}

func (r *repository) Clients(_ context.Context) []model.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].IDNumber < clients[j].IDNumber })
	return clients
}

func (r *repository) QuoteBooking(_ context.Context, req model.BookingRequest) (model.RoomPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if err := r.validateRequest(req, 0); err != nil {
		return model.RoomPrice{}, err
	}
	return model.RoomPrice{Price: Price(req.StartDate, req.EndDate)}, nil
}

func (r *repository) ConfirmBooking(_ context.Context, req model.RoomPaymentRequest) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The quote is advisory: the table may have changed since, so the
	// whole validation runs again under the write lock.
	if err := r.validateRequest(model.BookingRequest{
		ClientID:  req.ClientID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, 0); err != nil {
		return 0, err
	}

	id := r.nextBookingID
	r.nextBookingID++
	r.rooms[id] = model.BookedRoom{
		BookingID: id,
		ClientID:  req.ClientID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		BookedOn:  model.Today(),
		Price:     req.Price,
	}
	r.log.Debug("booking confirmed",
		zap.Int("booking_id", id),
		zap.Int("client_id", req.ClientID),
		zap.Stringer("start", req.StartDate),
		zap.Stringer("end", req.EndDate))
	return id, nil
}

func (r *repository) QuoteReschedule(_ context.Context, bookingID int, req model.BookingRequest) (model.RoomPrice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, err := r.ownedRoom(bookingID, req.ClientID)
	if err != nil {
		return model.RoomPrice{}, err
	}
	if err := r.validateDates(req, bookingID); err != nil {
		return model.RoomPrice{}, err
	}
	return model.RoomPrice{Price: RescheduleFee(room)}, nil
}

func (r *repository) ConfirmReschedule(_ context.Context, bookingID int, fee float64, req model.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.ownedRoom(bookingID, req.ClientID); err != nil {
		return err
	}
	if err := r.validateDates(req, bookingID); err != nil {
		return err
	}

	r.rooms[bookingID] = model.BookedRoom{
		BookingID: bookingID,
		ClientID:  req.ClientID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		BookedOn:  model.Today(),
		Price:     fee,
	}
	r.log.Debug("booking rescheduled",
		zap.Int("booking_id", bookingID),
		zap.Stringer("start", req.StartDate),
		zap.Stringer("end", req.EndDate))
	return nil
}

func (r *repository) CancelBooking(_ context.Context, bookingID, clientID int) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, err := r.ownedRoom(bookingID, clientID)
	if err != nil {
		return 0, err
	}
	delete(r.rooms, bookingID)
	r.log.Debug("booking cancelled", zap.Int("booking_id", bookingID))
	return RefundAmount(room), nil
}

func (r *repository) BookedRooms(_ context.Context) []model.BookedRoom {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]model.BookedRoom, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].BookingID < rooms[j].BookingID })
	return rooms
}

func (r *repository) SaveProfilePhoto(_ context.Context, photo model.ClientPhoto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[photo.ClientID]; !ok {
		return errors.Wrapf(errs.ErrClientNotFound, "id number %d", photo.ClientID)
	}
	r.photos[photo.ClientID] = photo
	return nil
}

func (r *repository) ProfilePhoto(_ context.Context, clientID int) (model.ClientPhoto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	photo, ok := r.photos[clientID]
	if !ok {
		return model.ClientPhoto{}, errors.Wrapf(errs.ErrClientNotFound, "no photo for id number %d", clientID)
	}
	return photo, nil
}

// ownedRoom looks a booking up and checks ownership. Callers hold the lock.
func (r *repository) ownedRoom(bookingID, clientID int) (model.BookedRoom, error) {
	room, ok := r.rooms[bookingID]
	if !ok {
		return model.BookedRoom{}, errors.Wrapf(errs.ErrInvalidBooking, "booking %d does not exist", bookingID)
	}
	if room.ClientID != clientID {
		return model.BookedRoom{}, errors.Wrapf(errs.ErrInvalidBooking, "client %d does not own booking %d", clientID, bookingID)
	}
	return room, nil
}

// validateRequest runs the full booking validation: dates, then the
// weekly quota. Callers hold the lock.
func (r *repository) validateRequest(req model.BookingRequest, excludeID int) error {
	if err := r.validateDates(req, excludeID); err != nil {
		return err
	}
	if r.roomsInWeek(req.ClientID, req.StartDate) >= MaxRoomsPerWeek {
		return errors.Wrapf(errs.ErrRoomNotAvailable,
			"client %d has already booked %d rooms in that week", req.ClientID, MaxRoomsPerWeek)
	}
	return nil
}

// validateDates checks the range itself and interval conflicts with
// live bookings, excluding excludeID (a rescheduled booking does not
// conflict with itself). Callers hold the lock.
func (r *repository) validateDates(req model.BookingRequest, excludeID int) error {
	today := model.Today()
	if req.StartDate.Before(today) {
		return errors.Wrapf(errs.ErrInvalidDate, "start date %s", req.StartDate)
	}
	if req.EndDate.Before(req.StartDate) {
		return errors.Wrapf(errs.ErrInvalidDate, "end date %s before start date %s", req.EndDate, req.StartDate)
	}
	for id, room := range r.rooms {
		if id == excludeID {
			continue
		}
		if room.Overlaps(req.StartDate, req.EndDate) {
			return errors.Wrapf(errs.ErrRoomNotAvailable,
				"there is already a booking for %s..%s", req.StartDate, req.EndDate)
		}
	}
	return nil
}

// roomsInWeek counts the client's bookings starting in the ISO week of
// start. Callers hold the lock.
func (r *repository) roomsInWeek(clientID int, start model.Date) int {
	week := start.WeekKey()
	n := 0
	for _, room := range r.rooms {
		if room.ClientID == clientID && room.StartDate.WeekKey() == week {
			n++
		}
	}
	return n
}
