package domain

import "fmt"

// Product represents a single catalog entry
type Product struct {
	Name     string `toml:"name" yaml:"name"`
	Category string `toml:"category" yaml:"category"`
	Price    string `toml:"price" yaml:"price"` // currency formatted, e.g. "$2"
	Stocked  bool   `toml:"stocked" yaml:"stocked"`
}

// Catalog is the fixed, read-only list of products shown by the table
type Catalog []Product

// DisplayGroup is a category heading with its ordered products
type DisplayGroup struct {
	Category string
	Products []Product
}

// Column identifies a sortable table column
type Column int

const (
	ColumnName Column = iota
	ColumnPrice
)

// String returns the column key used in config and flags
func (c Column) String() string {
	switch c {
	case ColumnName:
		return "name"
	case ColumnPrice:
		return "price"
	default:
		return "unknown"
	}
}

// Title returns the header label
func (c Column) Title() string {
	switch c {
	case ColumnName:
		return "Name"
	case ColumnPrice:
		return "Price"
	default:
		return "?"
	}
}

// ParseColumn converts a column key into a Column
func ParseColumn(s string) (Column, error) {
	switch s {
	case "name", "":
		return ColumnName, nil
	case "price":
		return ColumnPrice, nil
	}
	return ColumnName, fmt.Errorf("unknown column %q", s)
}

// Order is the sort direction of a column header
type Order int

const (
	OrderNone Order = iota
	OrderAsc
	OrderDesc
)

// Next advances along none -> asc -> desc -> none
func (o Order) Next() Order {
	switch o {
	case OrderNone:
		return OrderAsc
	case OrderAsc:
		return OrderDesc
	default:
		return OrderNone
	}
}

func (o Order) String() string {
	switch o {
	case OrderAsc:
		return "asc"
	case OrderDesc:
		return "desc"
	default:
		return "none"
	}
}

// Symbol returns the header marker for the order
func (o Order) Symbol() string {
	switch o {
	case OrderAsc:
		return "↑"
	case OrderDesc:
		return "↓"
	default:
		return ""
	}
}

// ParseOrder converts an order key into an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "none", "":
		return OrderNone, nil
	case "asc":
		return OrderAsc, nil
	case "desc":
		return OrderDesc, nil
	}
	return OrderNone, fmt.Errorf("unknown sort order %q", s)
}

// ParseError reports a product whose price cannot be read as a number
type ParseError struct {
	// Index is the position among the products being sorted, i.e. after
	// filtering; it is not a catalog row
	Index   int
	Product Product
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid price %q for product %q: %v", e.Product.Price, e.Product.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
