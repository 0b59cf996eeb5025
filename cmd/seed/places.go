package main

import "yellowbooks/internal/place"

func ptr[T any](v T) *T { return &v }

func samplePlaces() []place.CreateInput {
	return []place.CreateInput{
		{
			Name:        "Хаан Ресторан",
			Type:        place.TypeRestaurant,
			Description: "Монгол хоол, орчин үеийн орчин",
			Address:     "Сүхбаатар дүүрэг, 1-р хороо",
			Phone:       "+976-7711-1234",
			Email:       ptr("khan@restaurant.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800"},
			Rating:      ptr(4.5),
			ReviewCount: ptr(120),
		},
		{
			Name:        "Тэнгэр Ресторан",
			Type:        place.TypeRestaurant,
			Description: "Монгол хоолны газар, орчин үеийн орчин",
			Address:     "Баянзүрх дүүрэг, 5-р хороо",
			Phone:       "+976-7722-5678",
			Email:       ptr("tengger@restaurant.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800"},
			Rating:      ptr(4.8),
			ReviewCount: ptr(89),
		},
		{
			Name:        "Эрүүл Мэнд Клиник",
			Type:        place.TypeClinic,
			Description: "Өргөний эмчилгээ, сувилгаа",
			Address:     "Хан-Уул дүүрэг, 5-р хороо",
			Phone:       "+976-7722-8678",
			Email:       ptr("info@healthclinic.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800"},
			Rating:      ptr(4.6),
			ReviewCount: ptr(234),
		},
		{
			Name:        "Тех Дэлгүүр",
			Type:        place.TypeShop,
			Description: "Цахилгаан бараа, гар утас",
			Address:     "Баянзүрх дүүрэг, 3-р хороо",
			Phone:       "+976-7733-6012",
			Email:       ptr("shop@techstore.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800"},
			Rating:      ptr(4.3),
			ReviewCount: ptr(456),
		},
		{
			Name:        `Зочид Буудал "Номин"`,
			Type:        place.TypeHotel,
			Description: "Тав тухтай байр, өндөр чанарын үйлчилгээ",
			Address:     "Сүхбаатар дүүрэг, 8-р хороо",
			Phone:       "+976-7744-2222",
			Email:       ptr("info@nominhotel.mn"),
			Website:     ptr("https://nominhotel.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800"},
			Rating:      ptr(4.7),
			ReviewCount: ptr(178),
		},
		{
			Name:        `Кофе Хаус "Амар"`,
			Type:        place.TypeRestaurant,
			Description: "Кофе, цай болон амттан",
			Address:     "Чингэлтэй дүүрэг, 4-р хороо",
			Phone:       "+976-7755-3333",
			Email:       ptr("coffee@amar.mn"),
			Images:      []string{"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800"},
			Rating:      ptr(4.4),
			ReviewCount: ptr(92),
		},
	}
}
