package commands

import (
	"errors"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/menu"
	"canteen/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand adds a dish or drink to the catalog.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name        string
	price       kernel.Money
	stock       int
	category    string
	description string

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(
	name string,
	price kernel.Money,
	stock int,
	category string,
	description string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		price:       price,
		category:    strings.TrimSpace(category),
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	var nameErr error
	if cmd.name = strings.TrimSpace(name); cmd.name == "" {
		nameErr = menu.ErrNameIsRequired
	}
	cmd.stock = stock
	if err := errors.Join(nameErr, menu.ValidatePrice(price), menu.ValidateStock(stock)); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Name() string {
	return c.name
}

func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c AddMenuItemCommand) Stock() int {
	return c.stock
}

func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c AddMenuItemCommand) Description() string {
	return c.description
}
