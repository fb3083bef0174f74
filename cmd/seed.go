package cmd

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/pkg/errs"
)

type seedMenu struct {
	id         string
	name       string
	nameEn     string
	menuType   menu.Type
	img        string
	price      kernel.Price
	comboPrice kernel.Price
}

// Ids are fixed so restarts against the same database find the menus again.
var seedMenus = []seedMenu{
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c01", "치즈 버거", "Cheese Burger", menu.Burger, "cheese.png", 9900, 12900},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c02", "불고기 버거", "Bulgogi Burger", menu.Burger, "bulgogi.png", 4900, 6900},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c03", "새우 버거", "Shrimp Burger", menu.Burger, "shrimp.png", 5400, 7400},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c11", "감자튀김", "French Fries", menu.Side, "fries.png", 2000, 0},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c12", "치즈스틱", "Cheese Stick", menu.Side, "cheesestick.png", 2500, 0},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c21", "콜라", "Coke", menu.Drink, "coke.png", 1800, 0},
	{"7d0f5c1e-3b7a-4c55-9a0e-0b8f6a1d2c22", "사이다", "Cider", menu.Drink, "cider.png", 1800, 0},
}

// SeedMenus registers the shop's catalog. Menus that already exist are left alone.
func (c *CompositionRoot) SeedMenus(ctx context.Context) error {
	handler := c.CreateCreateMenuCommandHandler()
	repo := c.menuRepository()

	added := 0
	for _, s := range seedMenus {
		id, err := kernel.UUIDFromString(s.id)
		if err != nil {
			return err
		}

		_, err = repo.Get(ctx, id)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		var comboPrice *kernel.Price
		if s.menuType.OffersCombo() {
			combo := s.comboPrice
			comboPrice = &combo
		}

		cmd, err := commands.NewCreateMenuCommand(id, s.name, s.nameEn, s.menuType, s.img, s.price, comboPrice)
		if err != nil {
			return err
		}
		if err = handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("failed to seed menu %q: %w", s.nameEn, err)
		}
		added++
	}

	c.logger.InfoContext(ctx, "Menus seeded", "added", added, "total", len(seedMenus))
	return nil
}
