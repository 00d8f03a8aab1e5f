package main

import (
	"fmt"

	"budgetbook/internal/core"
)

type categoryCmd struct {
	Add  categoryAddCmd  `cmd:"" help:"Add a category."`
	Edit categoryEditCmd `cmd:"" help:"Edit a category."`
	Rm   categoryRmCmd   `cmd:"" help:"Delete a category; its transactions move to \"other\"."`
	List categoryListCmd `cmd:"" help:"List categories."`
}

type categoryAddCmd struct {
	Name  string `arg:"" help:"Display name."`
	ID    string `help:"Stable id (generated when empty)."`
	Color string `default:"#6b7280" help:"Color as #rrggbb."`
	Icon  string `default:"tag" help:"Icon name."`
}

func (c *categoryAddCmd) Run(rc *runContext) error {
	cat, err := rc.app.AddCategory(core.Category{ID: c.ID, Name: c.Name, Color: c.Color, Icon: c.Icon})
	if err != nil {
		return err
	}
	fmt.Fprintln(rc.out, cat.ID)
	return nil
}

type categoryEditCmd struct {
	ID    string `arg:"" help:"Category id."`
	Name  string `help:"New name."`
	Color string `help:"New color."`
	Icon  string `help:"New icon."`
}

func (c *categoryEditCmd) Run(rc *runContext) error {
	cat, err := rc.app.Category(c.ID)
	if err != nil {
		return err
	}
	if c.Name != "" {
		cat.Name = c.Name
	}
	if c.Color != "" {
		cat.Color = c.Color
	}
	if c.Icon != "" {
		cat.Icon = c.Icon
	}
	return rc.app.UpdateCategory(cat)
}

type categoryRmCmd struct {
	ID string `arg:"" help:"Category id."`
}

func (c *categoryRmCmd) Run(rc *runContext) error {
	moved, err := rc.app.DeleteCategory(c.ID)
	if err != nil {
		return err
	}
	rc.logger.Info("Category removed", "id", c.ID, "reassigned", moved)
	return nil
}

type categoryListCmd struct{}

func (c *categoryListCmd) Run(rc *runContext) error {
	tr := rc.tr()
	w := newTable(rc.out)
	for _, cat := range rc.app.Categories() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", cat.ID, tr.CategoryName(cat.Name), cat.Color, cat.Icon)
	}
	return w.Flush()
}
