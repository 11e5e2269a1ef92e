package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ariseapp/arise/internal/models"
	"github.com/ariseapp/arise/internal/state"
)

type CategoryCmd struct {
	Add    CategoryAddCmd    `cmd:"" help:"Add a category."`
	List   CategoryListCmd   `cmd:"" help:"List categories."`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category."`
}

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Display color." default:"gray"`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	for _, cat := range ctx.Store.State().Categories {
		if cat.Name == c.Name {
			return fmt.Errorf("category %q already exists", c.Name)
		}
	}

	category := models.Category{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
	}
	if err := category.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.Dispatch(state.AddCategory{Category: category}); err != nil {
		return err
	}

	fmt.Printf("Added category: %s\n", c.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	for _, cat := range ctx.Store.State().Categories {
		fmt.Printf("%s (%s)  %s\n", cat.Name, cat.Color, cat.ID)
	}
	return nil
}

type CategoryDeleteCmd struct {
	ID string `arg:"" help:"Category ID."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Dispatch(state.DeleteCategory{ID: c.ID}); err != nil {
		return err
	}
	fmt.Println("Deleted category.")
	return nil
}
