package views

import (
	"fmt"
	"io"

	"prodtable/internal/domain"
)

// WritePlain prints groups without styling, one heading per category
func WritePlain(w io.Writer, groups []domain.DisplayGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(w, "No products match")
		return err
	}

	for _, g := range groups {
		if _, err := fmt.Fprintln(w, g.Category); err != nil {
			return err
		}
		for _, p := range g.Products {
			line := fmt.Sprintf("  %-*s%s", NameWidth, p.Name, p.Price)
			if !p.Stocked {
				line += " (out of stock)"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
