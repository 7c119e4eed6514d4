package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/tourbook/services"
	"github.com/meinhoongagan/tourbook/utils"
)

// ReferenceController serves regions, cities, addresses and languages.
type ReferenceController struct {
	refs *services.ReferenceService
}

func NewReferenceController(refs *services.ReferenceService) *ReferenceController {
	return &ReferenceController{refs: refs}
}

func (h *ReferenceController) CreateRegion(c *fiber.Ctx) error {
	var in services.RegionInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	region, err := h.refs.CreateRegion(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(region)
}

func (h *ReferenceController) ListRegions(c *fiber.Ctx) error {
	regions, err := h.refs.ListRegions(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(regions)
}

func (h *ReferenceController) GetRegion(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	region, err := h.refs.GetRegion(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(region)
}

func (h *ReferenceController) UpdateRegion(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	var in services.RegionInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	region, err := h.refs.UpdateRegion(c.UserContext(), id, in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(region)
}

func (h *ReferenceController) DeleteRegion(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.refs.DeleteRegion(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Region deleted"})
}

func (h *ReferenceController) CreateCity(c *fiber.Ctx) error {
	var in services.CityInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	city, err := h.refs.CreateCity(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(city)
}

func (h *ReferenceController) ListCities(c *fiber.Ctx) error {
	regionID, err := queryUint(c, "region_id")
	if err != nil {
		return utils.SendError(c, err)
	}
	cities, err := h.refs.ListCities(c.UserContext(), regionID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(cities)
}

func (h *ReferenceController) GetCity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	city, err := h.refs.GetCity(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(city)
}

func (h *ReferenceController) CreateAddress(c *fiber.Ctx) error {
	var in services.AddressInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	address, err := h.refs.CreateAddress(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(address)
}

func (h *ReferenceController) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.refs.ListAddresses(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(addresses)
}

func (h *ReferenceController) GetAddress(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	address, err := h.refs.GetAddress(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(address)
}

func (h *ReferenceController) CreateLanguage(c *fiber.Ctx) error {
	var in services.LanguageInput
	if err := parseBody(c, &in); err != nil {
		return utils.SendError(c, err)
	}
	language, err := h.refs.CreateLanguage(c.UserContext(), in)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(language)
}

func (h *ReferenceController) ListLanguages(c *fiber.Ctx) error {
	languages, err := h.refs.ListLanguages(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(languages)
}

func (h *ReferenceController) GetLanguage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	language, err := h.refs.GetLanguage(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(language)
}

func (h *ReferenceController) DeleteLanguage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.refs.DeleteLanguage(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Language deleted"})
}
