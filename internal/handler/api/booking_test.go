//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/builder"
	commonhttp "slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", s.handler.CreateBooking)
	s.router.GET("/api/bookings", s.handler.ListBookings)
	s.router.GET("/api/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	b := builder.NewBookingBuilder()

	s.Run("full success returns 201", func() {
		s.mockCommands.EXPECT().
			Execute(gomock.Any(), gomock.Any()).
			Return(&booking.Result{
				Resource:       booking.NewResourceSuccess("85123", "https://zoom.example/j/85123", b.SlotStart, 30*time.Minute),
				Notification:   booking.NewSuccess("confirmation sent"),
				CalendarRecord: booking.NewSuccess("evt-42"),
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings", b.BuildCreateRequestDTO(), "")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.True(resp.FullySucceeded)
		s.Equal("85123", resp.Resource.ResourceID)
		s.Equal("https://zoom.example/j/85123", resp.Resource.JoinURL)
		s.Empty(resp.FailedStages)
	})

	s.Run("partial failure still returns 201 with failed stages", func() {
		s.mockCommands.EXPECT().
			Execute(gomock.Any(), gomock.Any()).
			Return(&booking.Result{
				Resource:       booking.NewResourceSuccess("85123", "https://zoom.example/j/85123", b.SlotStart, 30*time.Minute),
				Notification:   booking.NewFailure("smtp relay refused"),
				CalendarRecord: booking.NewSuccess("evt-42"),
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings", b.BuildCreateRequestDTO(), "")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.False(resp.FullySucceeded)
		s.Equal([]string{booking.StageNotification}, resp.FailedStages)
		s.Equal("smtp relay refused", resp.Notification.Reason)
	})

	s.Run("resource failure returns 502", func() {
		s.mockCommands.EXPECT().
			Execute(gomock.Any(), gomock.Any()).
			Return(&booking.Result{
				Resource:       booking.NewResourceFailure("timeout"),
				Notification:   booking.NewSkipped(),
				CalendarRecord: booking.NewSkipped(),
			})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings", b.BuildCreateRequestDTO(), "")

		s.Equal(http.StatusBadGateway, w.Code)
		var resp resdto.BookingResponse
		commonhttp.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal("timeout", resp.Resource.Reason)
		s.Equal("skipped", resp.Notification.Status)
		s.Equal("skipped", resp.CalendarRecord.Status)
	})

	s.Run("malformed body returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings", map[string]any{"topic": "no slot"}, "")

		commonhttp.AssertPlainErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("invalid email returns 400 without running the workflow", func() {
		dto := b.BuildCreateRequestDTO()
		dto.RequesterEmail = "not-an-address"

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/bookings", dto, "")

		commonhttp.AssertPlainErrorResponse(s.T(), w, http.StatusBadRequest, "email")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(&queries.BookingView{
				ID:                 id,
				Topic:              "Quarterly planning",
				RequesterName:      "Taro Yamada",
				RequesterEmail:     "taro@example.com",
				ResourceStatus:     "succeeded",
				NotificationStatus: "succeeded",
				CalendarStatus:     "succeeded",
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+id.String(), nil, "")

		var resp resdto.BookingHistoryResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
		s.Equal("Quarterly planning", resp.Topic)
	})

	s.Run("not found maps to 404", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), errs.ErrBookingNotFound))

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/"+id.String(), nil, "")

		commonhttp.AssertPlainErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("invalid id maps to 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings/not-a-uuid", nil, "")

		commonhttp.AssertPlainErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("returns recent executions", func() {
		s.mockQueries.EXPECT().
			ListRecent(gomock.Any(), int32(0)).
			Return([]*queries.BookingListItem{
				{ID: uuid.New(), Topic: "Standup", RequesterEmail: "a@example.com", ResourceStatus: "succeeded"},
				{ID: uuid.New(), Topic: "Review", RequesterEmail: "b@example.com", ResourceStatus: "failed"},
			}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings", nil, "")

		var resp []resdto.BookingListResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("limit is passed through", func() {
		s.mockQueries.EXPECT().
			ListRecent(gomock.Any(), int32(5)).
			Return(nil, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/bookings?limit=5", nil, "")

		s.Equal(http.StatusOK, w.Code)
	})
}
