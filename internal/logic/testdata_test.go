package logic

import "prodtable/internal/domain"

func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Dragonfruit"},
		{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
		{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Spinach"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Vegetables", Price: "$1", Stocked: true, Name: "Peas"},
		{Category: "Fruits", Price: "$3", Stocked: true, Name: "Mango"},
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Pineapple"},
		{Category: "Vegetables", Price: "$3", Stocked: true, Name: "Broccoli"},
		{Category: "Vegetables", Price: "$2", Stocked: true, Name: "Carrot"},
		{Category: "Fruits", Price: "$4", Stocked: true, Name: "Pomegranate"},
		{Category: "Vegetables", Price: "$5", Stocked: false, Name: "Artichoke"},
	}
}

func smallCatalog() domain.Catalog {
	return domain.Catalog{
		{Category: "Fruits", Price: "$2", Stocked: false, Name: "Passionfruit"},
		{Category: "Fruits", Price: "$1", Stocked: true, Name: "Apple"},
		{Category: "Vegetables", Price: "$4", Stocked: false, Name: "Pumpkin"},
	}
}

func names(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func groupNames(groups []domain.DisplayGroup) map[string][]string {
	out := make(map[string][]string, len(groups))
	for _, g := range groups {
		out[g.Category] = names(g.Products)
	}
	return out
}

func categories(groups []domain.DisplayGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Category)
	}
	return out
}
