package handler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gauzy/internal/http/middleware"
	"gauzy/internal/i18n"
	"gauzy/internal/logging"
	"gauzy/internal/model"
	"gauzy/internal/service"
	serviceMocks "gauzy/internal/service/mocks"
	"gauzy/internal/store"
	"gauzy/internal/view"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testOrgID  = "6f1c1f7e-5b8e-4c0b-9a55-2f0d4b1c9e11"
	testLinkID = "0b7a4c8d-1e2f-4a3b-8c9d-0e1f2a3b4c5d"
)

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()
	tr, err := i18n.New("en", []string{"en", "bg"})
	require.NoError(t, err)
	return tr
}

// newApp builds an app with the request ID and language middleware.
func newApp(t *testing.T) (*fiber.App, *i18n.Translator) {
	t.Helper()
	tr := newTranslator(t)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Use(middleware.Localizer(tr))
	return app, tr
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app, _ := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-1")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "rid-1", body.RequestID)
}

func TestListOrganizations(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	app, tr := newApp(t)
	app.Get("/organizations", ListOrganizations(mockSvc, tr))

	t.Run("success", func(t *testing.T) {
		expected := &service.OrganizationListResult{
			Items: []model.Organization{{Base: model.Base{ID: testOrgID}, Name: "Ever Co."}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, 10, 0).Return(expected, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got service.OrganizationListResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, 1, got.Total)
		assert.Equal(t, "Ever Co.", got.Items[0].Name)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations?limit=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations?offset=-1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, 5, 5).Return(nil, errors.New("boom")).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations?limit=5&offset=5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestCreateOrganization(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	app, tr := newApp(t)
	app.Post("/organizations", CreateOrganization(mockSvc, tr))

	t.Run("created", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(d *model.OrganizationCreateDTO) bool {
			return d.Name == "Ever Co." && d.Currency == "USD"
		})).Return(&model.Organization{Base: model.Base{ID: testOrgID}, Name: "Ever Co."}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/organizations", map[string]any{"name": "Ever Co.", "currency": "USD"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/organizations", strings.NewReader("{"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("validation error is localized", func(t *testing.T) {
		verr := &model.ValidationError{
			Fields: map[string]string{"name": "required", "taxId": "max", "weird": "unknown_rule"},
			Params: map[string]string{"taxId": "256"},
		}
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, verr).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/organizations", map[string]any{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := decodeError(t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
		assert.Equal(t, "name is required", body.Error.Fields["name"])
		assert.Equal(t, "taxId must be at most 256 characters", body.Error.Fields["taxId"])
		assert.Equal(t, "weird is invalid", body.Error.Fields["weird"])
	})

	mockSvc.AssertExpectations(t)
}

func TestGetOrganization(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	app, tr := newApp(t)
	app.Get("/organizations/:id", GetOrganization(mockSvc, tr))

	t.Run("invalid id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations/not-a-uuid", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, testOrgID).Return(nil, service.ErrOrganizationNotFound).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations/"+testOrgID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, testOrgID).Return(&model.Organization{Base: model.Base{ID: testOrgID}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations/"+testOrgID, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestUpdateAndDeleteOrganization(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	app, tr := newApp(t)
	app.Put("/organizations/:id", UpdateOrganization(mockSvc, tr))
	app.Delete("/organizations/:id", DeleteOrganization(mockSvc, tr))

	mockSvc.On("Update", mock.Anything, testOrgID, mock.MatchedBy(func(d *model.OrganizationUpdateDTO) bool {
		return d.Name != nil && *d.Name == "Renamed" && d.Currency == nil
	})).Return(&model.Organization{Base: model.Base{ID: testOrgID}, Name: "Renamed"}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPut, "/organizations/"+testOrgID, map[string]any{"name": "Renamed"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mockSvc.On("Delete", mock.Anything, testOrgID).Return(nil).Once()
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/organizations/"+testOrgID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	mockSvc.AssertExpectations(t)
}

func TestUploadOrganizationImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	app, tr := newApp(t)
	app.Post("/organizations/:id/image", UploadOrganizationImage(mockSvc, tr))

	t.Run("success", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "logo.png")
		part.Write([]byte("png bytes"))
		writer.Close()

		mockSvc.On("UploadImage", mock.Anything, testOrgID, mock.Anything, "logo.png", "application/octet-stream", int64(9)).
			Return(&model.Organization{Base: model.Base{ID: testOrgID}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/organizations/"+testOrgID+"/image", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing file", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/organizations/"+testOrgID+"/image", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "FILE_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("storage disabled", func(t *testing.T) {
		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		part, _ := writer.CreateFormFile("file", "logo.png")
		part.Write([]byte("x"))
		writer.Close()

		mockSvc.On("UploadImage", mock.Anything, testOrgID, mock.Anything, "logo.png", mock.Anything, int64(1)).
			Return(nil, service.ErrStorageDisabled).Once()

		req := httptest.NewRequest(http.MethodPost, "/organizations/"+testOrgID+"/image", body)
		req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "STORAGE_DISABLED", decodeError(t, resp).Error.Code)
	})
}

func TestListCurrencies(t *testing.T) {
	mockSvc := new(serviceMocks.MockOrganizationService)
	mockSvc.On("Currencies").Return([]service.CurrencyInfo{{Code: "USD", Symbol: "$", Fraction: 2}})

	app := fiber.New()
	app.Get("/currencies", ListCurrencies(mockSvc))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/currencies", nil))
	require.NoError(t, err)

	var got []service.CurrencyInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "USD", got[0].Code)
}

func TestListOrganizationUsers_UsesNegotiatedLanguage(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app, tr := newApp(t)
	app.Get("/organizations/:id/users", ListOrganizationUsers(mockSvc, tr))

	mockSvc.On("ListUsers", mock.Anything, testOrgID, "bg", "ada").
		Return(&service.UsersPage{OrganizationName: "Ever Co.", Users: []service.UserViewModel{{FullName: "Ada Lovelace"}}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/organizations/"+testOrgID+"/users?search=ada", nil)
	req.Header.Set(fiber.HeaderAcceptLanguage, "bg-BG,bg;q=0.9")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page service.UsersPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "Ada Lovelace", page.Users[0].FullName)
	mockSvc.AssertExpectations(t)
}

func TestExportOrganizationUsers(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app, tr := newApp(t)
	app.Get("/organizations/:id/users/export", ExportOrganizationUsers(mockSvc, tr))

	mockSvc.On("ExportUsers", mock.Anything, testOrgID, "en", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(3).(io.Writer).Write([]byte("xlsx"))
		}).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/organizations/"+testOrgID+"/users/export", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "users.xlsx")

	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "xlsx", string(b))
}

func TestAddOrganizationUser(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app, tr := newApp(t)
	app.Post("/organizations/:id/users", AddOrganizationUser(mockSvc, tr))

	t.Run("created", func(t *testing.T) {
		mockSvc.On("AddUser", mock.Anything, testOrgID, "en", mock.MatchedBy(func(d *model.UserCreateDTO) bool {
			return d.Email == "ada@example.com"
		})).Return(&service.UserMutationResult{Message: "Ada added to Ever Co."}, nil).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/organizations/"+testOrgID+"/users", map[string]any{"email": "ada@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var res service.UserMutationResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, "Ada added to Ever Co.", res.Message)
	})

	t.Run("email taken", func(t *testing.T) {
		mockSvc.On("AddUser", mock.Anything, testOrgID, "en", mock.Anything).Return(nil, service.ErrEmailTaken).Once()

		resp, err := app.Test(jsonRequest(http.MethodPost, "/organizations/"+testOrgID+"/users", map[string]any{"email": "ada@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "EMAIL_TAKEN", decodeError(t, resp).Error.Code)
	})
}

func TestSetUserInactive(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app, tr := newApp(t)
	app.Put("/user-organizations/:id/inactive", SetUserInactive(mockSvc, tr))

	mockSvc.On("SetUserInactive", mock.Anything, testLinkID, "en").
		Return(&service.UserMutationResult{Message: "User set as inactive."}, nil).Once()
	mockSvc.On("SetUserInactive", mock.Anything, testOrgID, "en").
		Return(nil, service.ErrUserOrganizationNotFound).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/user-organizations/"+testLinkID+"/inactive", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPut, "/user-organizations/"+testOrgID+"/inactive", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvites(t *testing.T) {
	mockSvc := new(serviceMocks.MockUserService)
	app, tr := newApp(t)
	app.Post("/invites", CreateInvites(mockSvc, tr))
	app.Get("/organizations/:id/invites", ListInvites(mockSvc, tr))

	mockSvc.On("InviteUsers", mock.Anything, "en", mock.MatchedBy(func(d *model.InviteCreateDTO) bool {
		return len(d.Emails) == 2
	})).Return(&service.InviteResult{Message: "2 invitation(s) sent"}, nil).Once()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/invites", map[string]any{
		"emails":         []string{"a@example.com", "b@example.com"},
		"organizationId": testOrgID,
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	mockSvc.On("ListInvites", mock.Anything, testOrgID).Return(nil, nil).Once()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/organizations/"+testOrgID+"/invites", nil))
	require.NoError(t, err)
	b, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(b))
}

func TestListTimeOff(t *testing.T) {
	mockSvc := new(serviceMocks.MockTimeOffService)
	app, tr := newApp(t)
	app.Get("/time-off", ListTimeOff(mockSvc, tr))

	t.Run("month of date", func(t *testing.T) {
		from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		mockSvc.On("List", mock.Anything, service.TimeOffQuery{
			OrganizationID:  testOrgID,
			From:            from,
			To:              from.AddDate(0, 1, 0),
			Status:          "APPROVED",
			IncludeHolidays: false,
		}).Return([]model.TimeOffRequest{{Base: model.Base{ID: "r1"}}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet,
			"/time-off?organizationId="+testOrgID+"&date=2026-02-17&status=APPROVED&holidays=false", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []model.TimeOffRequest
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
		assert.Len(t, rows, 1)
	})

	t.Run("invalid date", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/time-off?organizationId="+testOrgID+"&date=17.02.2026", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_DATE", decodeError(t, resp).Error.Code)
	})

	t.Run("scope required", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.TimeOffQuery{IncludeHolidays: true}).
			Return(nil, service.ErrScopeRequired).Once()

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/time-off", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "SCOPE_REQUIRED", decodeError(t, resp).Error.Code)
	})
}

func TestRequestTimeOffAndHolidays(t *testing.T) {
	mockSvc := new(serviceMocks.MockTimeOffService)
	app, tr := newApp(t)
	app.Post("/time-off", RequestTimeOff(mockSvc, tr))
	app.Post("/time-off/holidays", AddHolidays(mockSvc, tr))

	mockSvc.On("Request", mock.Anything, mock.Anything).
		Return(&model.TimeOffRequest{Status: model.TimeOffStatusRequested}, nil).Once()
	resp, err := app.Test(jsonRequest(http.MethodPost, "/time-off", map[string]any{
		"organizationId": testOrgID,
		"employeeId":     testLinkID,
		"start":          "2026-03-02T00:00:00Z",
		"end":            "2026-03-04T00:00:00Z",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tr.T("en", "TOASTR.MESSAGE.TIME_OFF_REQUESTED", nil), body["message"])

	mockSvc.On("AddHoliday", mock.Anything, mock.Anything).Return(nil, service.ErrOrganizationNotFound).Once()
	resp, err = app.Test(jsonRequest(http.MethodPost, "/time-off/holidays", map[string]any{"organizationId": testOrgID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelection(t *testing.T) {
	mockSvc := new(serviceMocks.MockSelectionService)
	sessions := store.NewRegistry(time.Hour)
	app, tr := newApp(t)
	app.Get("/selection", GetSelection(sessions))
	app.Put("/selection", PutSelection(mockSvc, sessions, tr))

	t.Run("session required", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/selection", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "SESSION_REQUIRED", decodeError(t, resp).Error.Code)
	})

	t.Run("put then get", func(t *testing.T) {
		org := &model.Organization{Base: model.Base{ID: testOrgID}, Name: "Ever Co."}
		mockSvc.On("Apply", mock.Anything, sessions.Get("s1"), mock.MatchedBy(func(u *service.SelectionUpdate) bool {
			return u.OrganizationID != nil && *u.OrganizationID == testOrgID
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*store.Store).SelectedOrganization.Next(org)
		}).Return(service.Selection{Organization: org}, nil).Once()

		req := jsonRequest(http.MethodPut, "/selection", map[string]any{"organizationId": testOrgID})
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		req = httptest.NewRequest(http.MethodGet, "/selection", nil)
		req.Header.Set(SessionHeader, "s1")
		resp, err = app.Test(req)
		require.NoError(t, err)

		var sel service.Selection
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sel))
		require.NotNil(t, sel.Organization)
		assert.Equal(t, "Ever Co.", sel.Organization.Name)
	})

	t.Run("mismatch", func(t *testing.T) {
		mockSvc.On("Apply", mock.Anything, mock.Anything, mock.Anything).
			Return(service.Selection{}, service.ErrEmployeeOrganizationMismatch).Once()

		req := jsonRequest(http.MethodPut, "/selection", map[string]any{"employeeId": testLinkID})
		req.Header.Set(SessionHeader, "s2")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSelectionSurvivesOtherSessions(t *testing.T) {
	sessions := store.NewRegistry(time.Hour)
	app, tr := newApp(t)
	app.Get("/selection", GetSelection(sessions))
	app.Get("/header", GetHeader(sessions, tr))

	get := func(target, sid string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set(SessionHeader, sid)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return resp
	}

	get("/selection", "session-AAAA")
	sessions.Get("session-AAAA").SelectedOrganization.Next(&model.Organization{Base: model.Base{ID: testOrgID}, Name: "Ever Co."})
	get("/selection", "session-BBBB")
	get("/header", "session-CCCC")

	var sel service.Selection
	require.NoError(t, json.NewDecoder(get("/selection", "session-AAAA").Body).Decode(&sel))
	require.NotNil(t, sel.Organization)
	assert.Equal(t, testOrgID, sel.Organization.ID)
	assert.Equal(t, 3, sessions.Len())
}

func TestGetHeader(t *testing.T) {
	sessions := store.NewRegistry(time.Hour)
	sessions.Get("s1").SelectedOrganization.Next(&model.Organization{Base: model.Base{ID: testOrgID}})

	app, tr := newApp(t)
	app.Get("/header", GetHeader(sessions, tr))

	req := httptest.NewRequest(http.MethodGet, "/header?url=/pages/users&theme=dark&extraActions=true&lang=bg", nil)
	req.Header.Set(SessionHeader, "s1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var st struct {
		ShowEmployeesSelector     bool   `json:"showEmployeesSelector"`
		ShowOrganizationsSelector bool   `json:"showOrganizationsSelector"`
		Theme                     string `json:"theme"`
		ShowExtraActions          bool   `json:"showExtraActions"`
		Language                  string `json:"language"`
		CreateContextMenu         []struct {
			Key   string `json:"key"`
			Title string `json:"title"`
			Link  string `json:"link"`
		} `json:"createContextMenu"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))

	assert.False(t, st.ShowEmployeesSelector)
	assert.True(t, st.ShowOrganizationsSelector)
	assert.Equal(t, "dark", st.Theme)
	assert.True(t, st.ShowExtraActions)
	assert.Equal(t, "bg", st.Language)
	require.NotEmpty(t, st.CreateContextMenu)
	assert.Equal(t, "Стартирай таймер", st.CreateContextMenu[0].Title)
	for _, it := range st.CreateContextMenu {
		if it.Key == "CONTEXT_MENU.TEAM" {
			assert.Equal(t, "pages/organizations/edit/"+testOrgID+"/settings/teams", it.Link)
		}
	}
}

func TestStreamTimeOff_BadRequests(t *testing.T) {
	mockSvc := new(serviceMocks.MockTimeOffService)
	sessions := store.NewRegistry(time.Hour)
	app, _ := newApp(t)
	app.Get("/time-off/stream", StreamTimeOff(mockSvc, sessions, logging.Discard()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/time-off/stream", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SESSION_REQUIRED", decodeError(t, resp).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/time-off/stream?status=MAYBE", nil)
	req.Header.Set(SessionHeader, "s1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_STATUS", decodeError(t, resp).Error.Code)
	mockSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestStreamUpdates(t *testing.T) {
	updates := make(chan view.TimeOffUpdate, 1)
	updates <- view.TimeOffUpdate{OrganizationID: testOrgID, Status: "ALL"}
	close(updates)

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	streamUpdates(w, updates, logging.Discard())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "event: timeoff\ndata: {"))
	assert.Contains(t, out, `"organizationId":"`+testOrgID+`"`)
	assert.True(t, strings.HasSuffix(out, "\n\n"))
}
