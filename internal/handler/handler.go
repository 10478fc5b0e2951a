package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/za-dev/roomfinder-service/internal/errs"
	"github.com/za-dev/roomfinder-service/internal/metrics"
	"github.com/za-dev/roomfinder-service/internal/model"
	"github.com/za-dev/roomfinder-service/pkg/validate"
	_ "github.com/za-dev/roomfinder-service/swagger"
)

type Handler struct {
	bookingSvc BookingService
	bucket     Bucket
	hub        *Hub
	enqueuer   Enqueuer
	log        *zap.Logger
}

func New(bookingSvc BookingService, bucket Bucket, hub *Hub, enqueuer Enqueuer, log *zap.Logger) *Handler {
	return &Handler{
		bookingSvc: bookingSvc,
		bucket:     bucket,
		hub:        hub,
		enqueuer:   enqueuer,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/ws", h.Subscribe)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/register", h.RegisterClient)
	api.POST("/login", h.ClientLogin)

	api.POST("/book-room", h.BookRoom)
	api.POST("/booking-payment", h.BookingPayment)
	api.POST("/reschedule-booking", h.RescheduleBooking)
	api.POST("/reschedule-payment", h.ReschedulePayment)
	api.POST("/cancel-booking", h.CancelBooking)
	api.GET("/bookings", h.GetBookedRooms)
	api.GET("/bookings/export", h.ExportBookedRooms)

	api.GET("/s3-url", h.SignedUploadURL)
	api.POST("/profile-pic", h.UploadProfilePic)
	api.GET("/profile-pic/:client_id", h.GetProfilePic)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) RegisterClient(c echo.Context) error {
	var client model.Client
	if err := c.Bind(&client); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(client); err != nil {
		return err
	}
	if err := h.bookingSvc.RegisterClient(c.Request().Context(), client); err != nil {
		return httpError(err)
	}
	metrics.ClientsRegistered.Inc()
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) ClientLogin(c echo.Context) error {
	clientID, err := intParam(c, "client_id")
	if err != nil {
		return err
	}
	client, err := h.bookingSvc.ClientLogin(c.Request().Context(), clientID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, client)
}

func (h *Handler) BookRoom(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	price, err := h.bookingSvc.BookRoom(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, price)
}

func (h *Handler) BookingPayment(c echo.Context) error {
	var req model.RoomPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	bookingID, err := h.bookingSvc.PayForBooking(ctx, req)
	if err != nil {
		return httpError(err)
	}
	metrics.BookingsConfirmed.Inc()
	h.notifyBookings(c, eventBookingConfirmed, bookingID)
	return c.JSON(http.StatusCreated, echo.Map{"booking_id": bookingID})
}

func (h *Handler) RescheduleBooking(c echo.Context) error {
	bookingID, err := intParam(c, "booking_id")
	if err != nil {
		return err
	}
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	fee, err := h.bookingSvc.RescheduleBooking(c.Request().Context(), bookingID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fee)
}

func (h *Handler) ReschedulePayment(c echo.Context) error {
	bookingID, err := intParam(c, "booking_id")
	if err != nil {
		return err
	}
	fee, err := strconv.ParseFloat(c.QueryParam("room_price"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room_price")
	}
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.bookingSvc.PayForReschedule(c.Request().Context(), bookingID, fee, req); err != nil {
		return httpError(err)
	}
	metrics.BookingsRescheduled.Inc()
	h.notifyBookings(c, eventBookingRescheduled, bookingID)
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	bookingID, err := intParam(c, "booking_id")
	if err != nil {
		return err
	}
	clientID, err := intParam(c, "client_id")
	if err != nil {
		return err
	}
	refund, err := h.bookingSvc.CancelBooking(c.Request().Context(), bookingID, clientID)
	if err != nil {
		return httpError(err)
	}
	metrics.BookingsCancelled.Inc()
	h.notifyBookings(c, eventBookingCancelled, bookingID)
	return c.JSON(http.StatusOK, echo.Map{"refund_amount": refund})
}

func (h *Handler) GetBookedRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.bookingSvc.BookedRooms(c.Request().Context()))
}

func (h *Handler) SignedUploadURL(c echo.Context) error {
	if h.bucket == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "object storage is not configured")
	}
	url, err := h.bucket.SignedUploadURL(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.SignedURL{URL: url})
}

func (h *Handler) UploadProfilePic(c echo.Context) error {
	var photo model.ClientPhoto
	if err := c.Bind(&photo); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(photo); err != nil {
		return err
	}
	if err := h.bookingSvc.UploadProfilePhoto(c.Request().Context(), photo); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetProfilePic(c echo.Context) error {
	clientID, err := strconv.Atoi(c.Param("client_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid client_id")
	}
	photo, err := h.bookingSvc.ProfilePhoto(c.Request().Context(), clientID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, photo)
}

// notifyBookings pushes the post-commit booking list to websocket
// subscribers and enqueues a booking event. Neither failure reaches the
// caller: the commit already happened.
func (h *Handler) notifyBookings(c echo.Context, eventType string, bookingID int) {
	rooms := h.bookingSvc.BookedRooms(c.Request().Context())
	if h.hub != nil {
		h.hub.Broadcast(rooms)
	}
	if err := h.enqueuer.Enqueue(newBookingEvent(eventType, bookingID, rooms)); err != nil {
		h.log.Warn("enqueue booking event",
			zap.String("type", eventType),
			zap.Int("booking_id", bookingID),
			zap.Error(err))
	}
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}

var rejections = []error{
	errs.ErrClientRegistered,
	errs.ErrClientNotFound,
	errs.ErrInvalidDate,
	errs.ErrRoomNotAvailable,
	errs.ErrInvalidBooking,
}

// httpError maps ledger rejections to 400 with the wrapped message;
// anything outside the taxonomy is a 500.
func httpError(err error) *echo.HTTPError {
	for _, sentinel := range rejections {
		if errors.Is(err, sentinel) {
			metrics.BookingsRejected.WithLabelValues(sentinel.Error()).Inc()
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
