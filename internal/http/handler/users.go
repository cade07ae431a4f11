package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"gauzy/internal/model"
	"gauzy/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListOrganizationUsers returns the users grid of an organization.
//
// @Summary      List organization users
// @Tags         users
// @Produce      json
// @Param        id      path      string  true   "organization id"
// @Param        search  query     string  false  "fuzzy filter on name or email"
// @Param        lang    query     string  false  "UI language"
// @Success      200     {object}  service.UsersPage
// @Failure      400     {object}  errorPayload
// @Failure      404     {object}  errorPayload
// @Router       /organizations/{id}/users [get]
func ListOrganizationUsers(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		page, err := svc.ListUsers(c.UserContext(), id, language(c, tr), c.Query("search"))
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(page)
	}
}

// ExportOrganizationUsers downloads the users grid as a workbook.
//
// @Summary      Export organization users
// @Tags         users
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id    path  string  true   "organization id"
// @Param        lang  query string  false  "UI language"
// @Success      200   {file}    file
// @Failure      404   {object}  errorPayload
// @Router       /organizations/{id}/users/export [get]
func ExportOrganizationUsers(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		var buf bytes.Buffer
		if err := svc.ExportUsers(c.UserContext(), id, language(c, tr), &buf); err != nil {
			return writeServiceError(c, tr, err)
		}
		c.Set(fiber.HeaderContentType, xlsxContentType)
		c.Attachment("users.xlsx")
		return c.Send(buf.Bytes())
	}
}

// AddOrganizationUser creates a user and links it to the organization.
//
// @Summary      Add user to organization
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "organization id"
// @Param        body  body      model.UserCreateDTO  true  "user"
// @Success      201   {object}  service.UserMutationResult
// @Failure      404   {object}  errorPayload
// @Failure      409   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /organizations/{id}/users [post]
func AddOrganizationUser(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		var dto model.UserCreateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.AddUser(c.UserContext(), id, language(c, tr), &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// SetUserInactive deactivates a user's membership.
//
// @Summary      Set user inactive
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "user organization id"
// @Success      200  {object}  service.UserMutationResult
// @Failure      404  {object}  errorPayload
// @Router       /user-organizations/{id}/inactive [put]
func SetUserInactive(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		res, err := svc.SetUserInactive(c.UserContext(), id, language(c, tr))
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(res)
	}
}

// CreateInvites invites one or more emails to an organization.
//
// @Summary      Invite users
// @Tags         invites
// @Accept       json
// @Produce      json
// @Param        body  body      model.InviteCreateDTO  true  "invitation"
// @Success      201   {object}  service.InviteResult
// @Failure      404   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /invites [post]
func CreateInvites(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.InviteCreateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.InviteUsers(c.UserContext(), language(c, tr), &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// ListInvites lists an organization's invitations.
//
// @Summary      List invites
// @Tags         invites
// @Produce      json
// @Param        id   path     string  true  "organization id"
// @Success      200  {array}  model.Invite
// @Router       /organizations/{id}/invites [get]
func ListInvites(svc service.UserService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		invites, err := svc.ListInvites(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		if invites == nil {
			invites = []model.Invite{}
		}
		return c.JSON(invites)
	}
}
