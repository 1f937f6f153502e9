package backend

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/streetify/streetify-backend/pkg/enums"
	"github.com/streetify/streetify-backend/pkg/types"
)

func strPtr(v string) *string { return &v }

func price(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func sampleUser() types.User {
	return types.User{
		ID:         "user-maria",
		Name:       "Maria Santos",
		Email:      "maria@example.com",
		Phone:      strPtr("+5215511122233"),
		Bio:        strPtr("Always hunting the best street tacos"),
		ProfilePic: strPtr("https://cdn.streetify.dev/users/maria.jpg"),
		Preferences: types.UserPreferences{
			Notifications:      true,
			LocationEnabled:    true,
			CuisinePreferences: []string{"mexican", "vietnamese"},
		},
		Following: []string{"vendor-taqueria-rosa"},
		Followers: []string{},
	}
}

func sampleVendors() []types.Vendor {
	return []types.Vendor{
		{
			ID:          "vendor-taqueria-rosa",
			Name:        "Taqueria Doña Rosa",
			Description: "Third-generation al pastor trompo, evenings only.",
			Location: types.VendorLocation{
				Latitude:  19.4326,
				Longitude: -99.1332,
				Address:   "Calle Regina 42, Centro",
			},
			Cuisine:      []string{"mexican"},
			Rating:       4.8,
			TotalRatings: 412,
			Photos:       []string{"https://cdn.streetify.dev/vendors/rosa-1.jpg"},
			Menu: []types.MenuItem{
				{
					ID:          "item-pastor",
					Name:        "Tacos al Pastor (3)",
					Description: "Trompo-shaved pork, pineapple, onion, cilantro.",
					Price:       price("4.50"),
					IsAvailable: true,
					Category:    "tacos",
					CustomizationOptions: []types.CustomizationOption{
						{
							Name: "Salsa",
							Options: []types.PricedOption{
								{Name: "Verde", Price: price("0")},
								{Name: "Roja", Price: price("0")},
								{Name: "Habanero", Price: price("0.25")},
							},
						},
					},
				},
				{
					ID:          "item-agua",
					Name:        "Agua de Horchata",
					Price:       price("2.00"),
					IsAvailable: true,
					Category:    "drinks",
				},
			},
			OperatingHours: types.OperatingHours{
				"friday":   {Open: "18:00", Close: "01:00"},
				"saturday": {Open: "18:00", Close: "01:00"},
			},
			IsOpen: true,
		},
		{
			ID:          "vendor-banh-mi-lan",
			Name:        "Banh Mi Lan",
			Description: "Crackly baguettes, slow-roasted lemongrass pork.",
			Location: types.VendorLocation{
				Latitude:  19.4284,
				Longitude: -99.1276,
				Address:   "Av. Chapultepec 210",
			},
			Cuisine:      []string{"vietnamese"},
			Rating:       4.5,
			TotalRatings: 178,
			Photos:       []string{"https://cdn.streetify.dev/vendors/lan-1.jpg"},
			Menu: []types.MenuItem{
				{
					ID:          "item-banhmi",
					Name:        "Classic Banh Mi",
					Price:       price("6.00"),
					IsAvailable: true,
					Category:    "sandwiches",
				},
				{
					ID:          "item-cafe",
					Name:        "Ca Phe Sua Da",
					Price:       price("3.25"),
					IsAvailable: false,
					Category:    "drinks",
				},
			},
			OperatingHours: types.OperatingHours{
				"monday": {Open: "08:00", Close: "15:00"},
			},
			IsOpen: false,
		},
		{
			ID:          "vendor-arepa-andina",
			Name:        "Arepas La Andina",
			Description: "Corn arepas griddled to order, queso de mano.",
			Location: types.VendorLocation{
				Latitude:  19.4401,
				Longitude: -99.1405,
				Address:   "Mercado Juárez, puesto 8",
			},
			Cuisine:      []string{"venezuelan", "colombian"},
			Rating:       4.2,
			TotalRatings: 64,
			Photos:       []string{},
			Menu: []types.MenuItem{
				{
					ID:          "item-reina",
					Name:        "Arepa Reina Pepiada",
					Price:       price("5.50"),
					IsAvailable: true,
					Category:    "arepas",
				},
			},
			OperatingHours: types.OperatingHours{
				"sunday": {Open: "09:00", Close: "16:00"},
			},
			IsOpen: true,
		},
	}
}

func sampleFeed() []types.SocialContent {
	created := time.Date(2026, 8, 20, 19, 30, 0, 0, time.UTC)
	return []types.SocialContent{
		{
			ID:        "post-pastor-night",
			CreatorID: "user-diego",
			Type:      enums.ContentTypePost,
			Media: []types.Media{
				{Type: enums.MediaTypeImage, URL: "https://cdn.streetify.dev/posts/pastor-night.jpg"},
			},
			Caption: strPtr("Trompo season never ends"),
			Location: &types.ContentLocation{
				Latitude:  19.4326,
				Longitude: -99.1332,
				Name:      "Centro Histórico",
			},
			Tags:             []string{"tacos", "alpastor"},
			Likes:            87,
			Comments:         []types.Comment{},
			CreatedAt:        created,
			AssociatedVendor: strPtr("vendor-taqueria-rosa"),
			AssociatedItems:  []string{"item-pastor"},
		},
		{
			ID:        "post-banhmi-review",
			CreatorID: "user-maria",
			Type:      enums.ContentTypePost,
			Media: []types.Media{
				{Type: enums.MediaTypeImage, URL: "https://cdn.streetify.dev/posts/banhmi.jpg"},
				{Type: enums.MediaTypeVideo, URL: "https://cdn.streetify.dev/posts/banhmi-crunch.mp4"},
			},
			Caption:          strPtr("The crunch on this baguette"),
			Tags:             []string{"banhmi"},
			Mentions:         []string{"user-diego"},
			Likes:            34,
			Comments:         []types.Comment{},
			CreatedAt:        created.Add(2 * time.Hour),
			AssociatedVendor: strPtr("vendor-banh-mi-lan"),
		},
	}
}
