package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"

	"gauzy/internal/model"
	"gauzy/internal/service"
	"gauzy/internal/store"
	"gauzy/internal/view"
)

// streamHeartbeat keeps idle SSE connections open through proxies.
const streamHeartbeat = 15 * time.Second

// parseDate accepts YYYY-MM-DD or RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ListTimeOff lists the time-off table for an employee or organization.
//
// @Summary      List time off
// @Tags         time-off
// @Produce      json
// @Param        employeeId      query     string  false  "employee scope"
// @Param        organizationId  query     string  false  "organization scope"
// @Param        date            query     string  false  "any day of the month to show (YYYY-MM-DD)"
// @Param        status          query     string  false  "ALL, REQUESTED, APPROVED or DENIED"
// @Param        holidays        query     bool    false  "include holidays"  default(true)
// @Success      200             {array}   model.TimeOffRequest
// @Failure      400             {object}  errorPayload
// @Failure      404             {object}  errorPayload
// @Router       /time-off [get]
func ListTimeOff(svc service.TimeOffService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.TimeOffQuery{
			EmployeeID:      c.Query("employeeId"),
			OrganizationID:  c.Query("organizationId"),
			Status:          c.Query("status"),
			IncludeHolidays: c.QueryBool("holidays", true),
		}
		if d := c.Query("date"); d != "" {
			date, err := parseDate(d)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DATE", "date must be YYYY-MM-DD")
			}
			q.From, q.To = service.MonthWindow(date)
		}

		rows, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		if rows == nil {
			rows = []model.TimeOffRequest{}
		}
		return c.JSON(rows)
	}
}

// RequestTimeOff records a days-off request.
//
// @Summary      Request time off
// @Tags         time-off
// @Accept       json
// @Produce      json
// @Param        body  body      model.TimeOffRequestDTO  true  "request"
// @Success      201   {object}  model.TimeOffRequest
// @Failure      404   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /time-off [post]
func RequestTimeOff(svc service.TimeOffService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.TimeOffRequestDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req, err := svc.Request(c.UserContext(), &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"data":    req,
			"message": tr.T(language(c, tr), "TOASTR.MESSAGE.TIME_OFF_REQUESTED", nil),
		})
	}
}

// AddHolidays records an organization holiday.
//
// @Summary      Add holiday
// @Tags         time-off
// @Accept       json
// @Produce      json
// @Param        body  body      model.HolidayDTO  true  "holiday"
// @Success      201   {object}  model.TimeOffRequest
// @Failure      404   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /time-off/holidays [post]
func AddHolidays(svc service.TimeOffService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.HolidayDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req, err := svc.AddHoliday(c.UserContext(), &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"data":    req,
			"message": tr.T(language(c, tr), "TOASTR.MESSAGE.HOLIDAY_ADDED", nil),
		})
	}
}

// StreamTimeOff pushes a server-sent event every time the session's
// time-off table reloads.
//
// @Summary      Stream time-off reloads
// @Tags         time-off
// @Produce      text/event-stream
// @Param        X-Session-ID  header  string  true   "session id"
// @Param        status        query   string  false  "status filter"
// @Param        holidays      query   bool    false  "include holidays"  default(true)
// @Success      200  {object}  view.TimeOffUpdate
// @Failure      400  {object}  errorPayload
// @Router       /time-off/stream [get]
func StreamTimeOff(svc service.TimeOffService, sessions *store.Registry, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, ok, err := sessionStore(c, sessions)
		if !ok {
			return err
		}
		status := utils.CopyString(c.Query("status", model.TimeOffStatusAll))
		holidays := c.QueryBool("holidays", true)

		ctx, cancel := context.WithCancel(context.Background())
		v := view.NewTimeOff(ctx, svc, st, log)
		if err := v.SetStatus(status); err != nil {
			v.Close()
			cancel()
			return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", err.Error())
		}
		v.SetDisplayHolidays(holidays)

		c.Set(fiber.HeaderContentType, "text/event-stream")
		c.Set(fiber.HeaderCacheControl, "no-cache")
		c.Set(fiber.HeaderConnection, "keep-alive")

		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			defer cancel()
			defer v.Close()
			streamUpdates(w, v.Updates(), log)
		})
		return nil
	}
}

// streamUpdates writes updates as SSE events until the channel closes or
// the client goes away.
func streamUpdates(w *bufio.Writer, updates <-chan view.TimeOffUpdate, log logrus.FieldLogger) {
	ticker := time.NewTicker(streamHeartbeat)
	defer ticker.Stop()
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			b, err := json.Marshal(u)
			if err != nil {
				log.WithError(err).Error("encode time-off update")
				return
			}
			fmt.Fprintf(w, "event: timeoff\ndata: %s\n\n", b)
		case <-ticker.C:
			fmt.Fprint(w, ": ping\n\n")
		}
		if err := w.Flush(); err != nil {
			return
		}
	}
}
