package main

// Seed payloads for the initial content entries. The shapes mirror the page
// payload structs in internal/domain/entities/content.

func homeSeed() map[string]any {
	return map[string]any{
		"hero": map[string]any{
			"logoUrl":   "https://media.sphereos.dev/beckons/logo-full.svg",
			"logoAlt":   "Beckons",
			"videoUrl":  "",
			"posterUrl": "https://media.sphereos.dev/beckons/hero-poster.jpg",
		},
		"intro": map[string]any{
			"headline": "Introducing Beckons, a global curator of remarkable journeys of discovery.",
			"ctaText":  "Take a closer look",
			"ctaUrl":   "#video",
		},
		"videoMask": map[string]any{
			"imageUrl": "https://media.sphereos.dev/beckons/video-mask-shape.png",
		},
		"about": map[string]any{
			"title":           "A World That Calls to You",
			"titleItalicPart": "Calls",
			"body": "The modern luxury traveler is seeking something deeper: authentic connection to place, people, and culture. Beckons answers that call.\n\n" +
				"Uniting the acclaimed portfolios of Baillie Lodges and Tierra Hotels, Beckons represents a new standard in experiential travel. Our global collection of stays is purpose-built for immersion, offering guests privileged access to the world's most extraordinary destinations through the eyes of those who know them best.\n\n" +
				"What began as a collection of exceptional lodges has evolved into something greater: a curator of meaningful travel experiences for guests who seek both luxury and authenticity.\n\n" +
				"Join us. The journey begins March 2026.",
			"ctaText": "EXPLORE OUR BROCHURE",
			"ctaUrl":  "/brochure",
		},
		"lodgeCarousel": map[string]any{
			"title":  "Our Lodges",
			"lodges": lodgeSeed(),
		},
		"whyBeckons": map[string]any{
			"title": "The Texture of Our Journeys",
			"description": "A Beckons stay moves with where you are. It's felt in the people who host you, the places they reveal, " +
				"and the way each day unfolds. One moment might take you hiking across headlands, sailing through reef shallows, " +
				"or listening as a guide shares the story behind a stretch of land. The next might invite stillness: slow rituals, " +
				"a long lunch, or a rainforest massage as the Mossman River flows nearby.",
			"cards": []any{
				map[string]any{
					"title":       "Places Worth Reaching",
					"description": "We choose our locations for what they open up: their natural beauty, cultural depth and the way they shift your perspective.",
					"imageUrl":    "https://media.sphereos.dev/beckons/why-card-1.jpg",
				},
				map[string]any{
					"title":       "Built for where we are",
					"description": "Design is shaped by landscape, not layered over it. Architecture, interiors and spatial rhythms are developed in response to place at every level.",
					"imageUrl":    "https://media.sphereos.dev/beckons/why-card-2.jpg",
				},
				map[string]any{
					"title":       "Intentionally local",
					"description": "We collaborate with people who know a place intimately, so that what's shared feels real rather than performed.",
					"imageUrl":    "https://media.sphereos.dev/beckons/why-card-3.jpg",
				},
			},
		},
		"stickyButtonText": "INQUIRE NOW",
	}
}

// lodgeSeed lists the nine portfolio properties shown in the carousel.
func lodgeSeed() []any {
	return []any{
		map[string]any{"name": "Southern Ocean Lodge", "region": "Kangaroo Island", "country": "South Australia, Australia", "imageUrl": "https://media.sphereos.dev/beckons/lodges/southern-ocean-lodge.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/southern-ocean-lodge-icon.png"},
		map[string]any{"name": "The Louise", "region": "Barossa Valley", "country": "South Australia, Australia", "imageUrl": "https://media.sphereos.dev/beckons/lodges/the-louise.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/the-louise-icon.png"},
		map[string]any{"name": "Tierra Atacama", "region": "Atacama Desert", "country": "Chile", "imageUrl": "https://media.sphereos.dev/beckons/lodges/tierra-atacama.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/tierra-atacama-icon.png"},
		map[string]any{"name": "Tierra Patagonia", "region": "Torres del Paine", "country": "Chile", "imageUrl": "https://media.sphereos.dev/beckons/lodges/tierra-patagonia.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/tierra-patagonia-icon.png"},
		map[string]any{"name": "Capella Lodge", "region": "Lord Howe Island", "country": "New South Wales, Australia", "imageUrl": "https://media.sphereos.dev/beckons/lodges/capella-lodge.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/capella-lodge-icon.png"},
		map[string]any{"name": "Clayoquot Wilderness Lodge", "region": "Vancouver Island", "country": "Canada", "imageUrl": "https://media.sphereos.dev/beckons/lodges/clayoquot.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/clayoquot-icon.png"},
		map[string]any{"name": "Huka Lodge", "region": "Taupō", "country": "New Zealand", "imageUrl": "https://media.sphereos.dev/beckons/lodges/huka-lodge.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/huka-lodge-icon.png"},
		map[string]any{"name": "Longitude 131°", "region": "Uluru-Kata Tjuta", "country": "Northern Territory, Australia", "imageUrl": "https://media.sphereos.dev/beckons/lodges/longitude-131.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/longitude-131-icon.png"},
		map[string]any{"name": "Silky Oaks Lodge", "region": "Daintree Rainforest", "country": "Queensland, Australia", "imageUrl": "https://media.sphereos.dev/beckons/lodges/silky-oaks.jpg", "iconUrl": "https://media.sphereos.dev/beckons/lodges/silky-oaks-icon.png"},
	}
}

func inquireSeed() map[string]any {
	return map[string]any{
		"title":                    "A World That Calls to You",
		"titleItalicPart":          "Calls",
		"subtitle":                 "Share your details below for general inquiries as Beckons continues to take shape.",
		"metaTitle":                "Inquire | Beckons",
		"metaDescription":          "Get in touch with Beckons for general inquiries as we continue to take shape.",
		"videoMaskImageUrl":        "https://media.sphereos.dev/beckons/video-mask-shape.png",
		"firstNameLabel":           "First name*",
		"lastNameLabel":            "Last name*",
		"contactEmailLabel":        "Contact email*",
		"contactPhoneLabel":        "Contact phone*",
		"countryRegionLabel":       "Your country/region*",
		"countryRegionPlaceholder": "Please select",
		"yourEnquiryLabel":         "Your enquiry*",
		"subscribeCheckboxText":    "Subscribe to Beckons Lodges for updates from our lodges",
		"privacyText":              "Read our",
		"privacyLinkText":          "Privacy Policy",
		"privacyLinkUrl":           "/privacy",
		"submitButtonText":         "SUBMIT",
	}
}

func emailSubscriptionSeed() map[string]any {
	return map[string]any{
		"title":                    "A World That Calls to You",
		"titleItalicPart":          "Calls",
		"subtitle":                 "Share your details below to receive updates as Beckons comes to life and its story begins to unfold.",
		"metaTitle":                "Subscribe | Beckons",
		"metaDescription":          "Join our mailing list for the latest on new destinations, seasonal offers and what's unfolding across the Beckons collection.",
		"videoMaskImageUrl":        "https://media.sphereos.dev/beckons/video-mask-shape.png",
		"firstNameLabel":           "First name*",
		"lastNameLabel":            "Last name*",
		"contactEmailLabel":        "Contact email*",
		"countryRegionLabel":       "Your country/region*",
		"countryRegionPlaceholder": "Please select",
		"privacyText":              "Read our",
		"privacyLinkText":          "Privacy Policy",
		"privacyLinkUrl":           "/privacy",
		"submitButtonText":         "SUBMIT",
	}
}

func thankYouSeed() map[string]any {
	return map[string]any{
		"title":   "Thank You!",
		"message": "Your details have been received successfully. We appreciate your interest in Beckons and the world taking shape around it.",
		"ctaText": "RETURN HOME",
		"ctaUrl":  "/",
	}
}

func siteSettingsSeed() map[string]any {
	return map[string]any{
		"logoUrl":     "https://media.sphereos.dev/beckons/logo-full.svg",
		"logoAlt":     "Beckons",
		"logoIconUrl": "https://media.sphereos.dev/beckons/logo-icon.svg",
		"brandName":   "Beckons",
	}
}

func footerSeed() map[string]any {
	return map[string]any{
		"logoUrl":               "https://media.sphereos.dev/beckons/logo-icon.svg",
		"newsletterTitle":       "Stay Connected",
		"newsletterDescription": "Join our mailing list for the latest on new destinations, seasonal offers and what's unfolding across the collection.",
		"newsletterButtonText":  "SUBSCRIBE NOW",
		"portfolioTitle":        "Our Portfolio",
		"portfolioDescription": "Beckons is a global curator of remarkable journeys across the globe. Every stay is deeply tied to its location, " +
			"offering a distinct way to experience land, culture and yourself.",
		"lodges": []any{
			map[string]any{
				"country": "Australia",
				"lodges": []any{
					map[string]any{"name": "Capella Lodge", "location": "Lord Howe Island, New South Wales"},
					map[string]any{"name": "Longitude 131°", "location": "Uluru-Kata Tjuta, Northern Territory"},
					map[string]any{"name": "Silky Oaks Lodge", "location": "Daintree Rainforest, North Queensland"},
					map[string]any{"name": "Southern Ocean Lodge", "location": "Kangaroo Island, South Australia"},
					map[string]any{"name": "The Louise", "location": "Barossa Valley, South Australia"},
				},
			},
			map[string]any{
				"country": "New Zealand",
				"lodges": []any{
					map[string]any{"name": "Huka Lodge", "location": "Taupō, North Island"},
				},
			},
			map[string]any{
				"country": "Canada",
				"lodges": []any{
					map[string]any{"name": "Clayoquot Wilderness Lodge", "location": "Vancouver Island"},
				},
			},
			map[string]any{
				"country": "Chile",
				"lodges": []any{
					map[string]any{"name": "Tierra Atacama", "location": "Atacama Desert"},
					map[string]any{"name": "Tierra Patagonia", "location": "Torres del Paine National Park"},
				},
			},
		},
		"copyrightText": "© 2026 Beckons. All rights reserved.",
	}
}

func navigationSeed() map[string]any {
	return map[string]any{
		"items": []any{
			map[string]any{"label": "Home", "url": "/"},
			map[string]any{"label": "Inquire", "url": "/inquire"},
			map[string]any{"label": "Subscribe", "url": "/email-subscription"},
		},
	}
}
