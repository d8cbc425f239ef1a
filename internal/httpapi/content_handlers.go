package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/skarut/landing-api/internal/auth"
	"github.com/skarut/landing-api/internal/store"
)

// ContentController exposes the bank, title, and about collections. The same
// show handlers serve the public mirrors and the gated admin routes.
type ContentController struct {
	Banks  store.Banks
	Titles store.Titles
	Abouts store.Abouts
	Logger auth.Logger
}

func (ctl *ContentController) BankShow(c *fiber.Ctx) error {
	record, err := ctl.Banks.Get(c.UserContext())
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}
	return c.JSON(record)
}

func (ctl *ContentController) BankUpsert(c *fiber.Ctx) error {
	payload := new(BankPayload)

	if err := c.BodyParser(payload); err != nil {
		return writeError(c, ctl.Logger, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := errors.ValidateWithOzzo(payload.Validate, "invalid bank payload"); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	record, err := ctl.Banks.Upsert(c.UserContext(), payload.Bank)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "bank information updated",
		"bank":    record,
	})
}

func (ctl *ContentController) BankDelete(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	if err := ctl.Banks.Delete(c.UserContext(), id); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "bank information deleted",
	})
}

func (ctl *ContentController) TitleShow(c *fiber.Ctx) error {
	record, err := ctl.Titles.Get(c.UserContext())
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}
	return c.JSON(record)
}

func (ctl *ContentController) TitleUpsert(c *fiber.Ctx) error {
	payload := new(TitlePayload)

	if err := c.BodyParser(payload); err != nil {
		return writeError(c, ctl.Logger, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := errors.ValidateWithOzzo(payload.Validate, "invalid title payload"); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	record, err := ctl.Titles.Upsert(c.UserContext(), payload.Title)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "title information updated",
		"title":   record,
	})
}

func (ctl *ContentController) TitleDelete(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	if err := ctl.Titles.Delete(c.UserContext(), id); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "title information deleted",
	})
}

func (ctl *ContentController) AboutShow(c *fiber.Ctx) error {
	record, err := ctl.Abouts.Get(c.UserContext())
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}
	return c.JSON(record)
}

func (ctl *ContentController) AboutUpsert(c *fiber.Ctx) error {
	payload := new(AboutPayload)

	if err := c.BodyParser(payload); err != nil {
		return writeError(c, ctl.Logger, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := errors.ValidateWithOzzo(payload.Validate, "invalid about payload"); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	record, err := ctl.Abouts.Upsert(c.UserContext(), payload.About)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "about information updated",
		"about":   record,
	})
}

func (ctl *ContentController) AboutDelete(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return writeError(c, ctl.Logger, err)
	}

	if err := ctl.Abouts.Delete(c.UserContext(), id); err != nil {
		return writeError(c, ctl.Logger, err)
	}

	return c.JSON(fiber.Map{
		"message": "about information deleted",
	})
}

func parseRecordID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryBadInput, "invalid record id")
	}
	return id, nil
}
