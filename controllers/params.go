package controllers

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/models"
	"github.com/meinhoongagan/tourbook/utils"
)

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, utils.Validation("Invalid id")
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return utils.WrapError(utils.ErrValidation, "Cannot parse JSON", err)
	}
	return nil
}

func queryUint(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, utils.Validation(key + " must be a positive integer")
	}
	id := uint(v)
	return &id, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, utils.Validation(key + " must be a number")
	}
	return &v, nil
}

func queryDate(c *fiber.Ctx, key string) (*models.Date, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, utils.Validation(key + ": " + err.Error())
	}
	return &d, nil
}

// queryUintList reads a comma separated id list such as "1,2,3".
func queryUintList(c *fiber.Ctx, key string) ([]uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, utils.Validation(key + " must be a comma separated list of ids")
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}

// openPhoto validates the multipart "photo" field and opens it.
func openPhoto(c *fiber.Ctx) (multipart.File, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, utils.Validation("photo is required")
	}
	if err := utils.ValidateImage(fh); err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, utils.WrapError(utils.ErrValidation, "Cannot read photo", err)
	}
	return f, nil
}
