package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"gauzy/internal/model"
	"gauzy/internal/service"
)

// ListOrganizations lists organizations with limit and offset.
//
// @Summary      List organizations
// @Tags         organizations
// @Produce      json
// @Param        limit   query     int  false  "page size"  default(10)
// @Param        offset  query     int  false  "offset"     default(0)
// @Success      200     {object}  service.OrganizationListResult
// @Failure      400     {object}  errorPayload
// @Router       /organizations [get]
func ListOrganizations(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil || limit < 1 || limit > 100 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 100")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(res)
	}
}

// CreateOrganization creates an organization.
//
// @Summary      Create organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      model.OrganizationCreateDTO  true  "organization"
// @Success      201   {object}  model.Organization
// @Failure      400   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /organizations [post]
func CreateOrganization(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var dto model.OrganizationCreateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		org, err := svc.Create(c.UserContext(), &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.Status(fiber.StatusCreated).JSON(org)
	}
}

// GetOrganization returns one organization.
//
// @Summary      Get organization
// @Tags         organizations
// @Produce      json
// @Param        id   path      string  true  "organization id"
// @Success      200  {object}  model.Organization
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /organizations/{id} [get]
func GetOrganization(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		org, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(org)
	}
}

// UpdateOrganization applies a partial update.
//
// @Summary      Update organization
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "organization id"
// @Param        body  body      model.OrganizationUpdateDTO  true  "fields to change"
// @Success      200   {object}  model.Organization
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Failure      422   {object}  errorPayload
// @Router       /organizations/{id} [put]
func UpdateOrganization(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		var dto model.OrganizationUpdateDTO
		if err := c.BodyParser(&dto); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		org, err := svc.Update(c.UserContext(), id, &dto)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(org)
	}
}

// DeleteOrganization soft-deletes an organization.
//
// @Summary      Delete organization
// @Tags         organizations
// @Param        id   path  string  true  "organization id"
// @Success      204
// @Failure      400  {object}  errorPayload
// @Failure      404  {object}  errorPayload
// @Router       /organizations/{id} [delete]
func DeleteOrganization(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadOrganizationImage stores a new organization logo.
//
// @Summary      Upload organization logo
// @Tags         organizations
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "organization id"
// @Param        file  formData  file    true  "image"
// @Success      200   {object}  model.Organization
// @Failure      400   {object}  errorPayload
// @Failure      404   {object}  errorPayload
// @Failure      415   {object}  errorPayload
// @Failure      503   {object}  errorPayload
// @Router       /organizations/{id}/image [post]
func UploadOrganizationImage(svc service.OrganizationService, tr Translator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := uuidParam(c, "id")
		if !ok {
			return err
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = "application/octet-stream"
		}

		org, err := svc.UploadImage(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, tr, err)
		}
		return c.JSON(org)
	}
}

// ListCurrencies lists the selectable organization currencies.
//
// @Summary      List currencies
// @Tags         organizations
// @Produce      json
// @Success      200  {array}  service.CurrencyInfo
// @Router       /currencies [get]
func ListCurrencies(svc service.OrganizationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Currencies())
	}
}
