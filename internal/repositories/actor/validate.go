package actor

import (
	"github.com/KirkDiggler/statblock-importer/internal/entities/schema"
	"github.com/KirkDiggler/statblock-importer/internal/errors"
)

const (
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
	errItemNil      = "item cannot be nil"
	errItemName     = "item name cannot be empty"
)

func validateActor(a *schema.Actor) error {
	if a == nil {
		return errors.InvalidArgument(errActorNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", a.Name, vb)
	errors.ValidateRequired("type", a.Type, vb)
	return vb.Build()
}

func validateItem(item *schema.Item) error {
	if item == nil {
		return errors.InvalidArgument(errItemNil)
	}
	if item.Name == "" {
		return errors.InvalidArgument(errItemName)
	}
	return nil
}

func itemName(item *schema.Item) string {
	if item == nil {
		return ""
	}
	return item.Name
}
