package models

import "fmt"

// Category labels tasks and habits. Names are unique by convention, not
// enforced by storage.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (c Category) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	return nil
}
