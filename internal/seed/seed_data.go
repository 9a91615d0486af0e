// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seed

import "github.com/MKhiriev/go-trip-keeper/models"

// Itinerary returns a freshly built copy of the shipped nine-day
// Dubai-Oman itinerary. Callers receive their own slice and may mutate it.
func Itinerary() []models.DailySchedule {
	return []models.DailySchedule{
		{
			Date:  "2025-12-21",
			Title: "Arrival in Dubai",
			DailyTips: dayTips(26, 16, "Sunny", "Dubai, UAE",
				[]string{"Light jacket for evening", "Power adapter (Type G)", "Passport copy"},
				"Arrive at meeting point 10 minutes before tour time."),
			Items: []models.ItineraryItem{
				{
					ID:          "1",
					Time:        "06:00",
					Location:    "Dubai International (DXB)",
					Title:       "Arrival",
					Description: "Land at Dubai International Airport.",
					Photo:       "https://images.unsplash.com/photo-1569154941061-e231b4725ef1?q=80&w=1000",
					Category:    models.CategoryFlight,
					Date:        "2025-12-21",
				},
				{
					ID:          "2",
					Time:        "10:00",
					Location:    "Church",
					Title:       "Mass",
					Description: "Attend mass service.",
					Photo:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryMass,
					Date:        "2025-12-21",
				},
				{
					ID:              "3",
					Time:            "14:30",
					Location:        "Dubai Creek - Al Seef St - Al Seef Heritage Hotel by Curio Bayt 1",
					Title:           "Old Town, Creek, Museums, Souks, & Street Food Tour",
					Description:     "Walking tour in old town. Meet your guide at the entrance of Al Seef Heritage Hotel by Curio Bayt 1. The guide will be wearing a badge and will contact you before the tour.",
					LongDescription: "Dubai: Old Town, Creek, Museums, Souks, & Street Food Tour. Duration: 2:30 PM - 5:30 PM. Please arrive at the meeting point 10 minutes before your chosen time.",
					OpeningHours:    "2:30 PM - 5:30 PM",
					Tips:            []string{"Arrive 10 minutes before tour time.", "Guide will contact you before the tour."},
					Photo:           "https://images.unsplash.com/photo-1518684079-3c830dcef090?q=80&w=1000",
					Category:        models.CategoryActivity,
					Date:            "2025-12-21",
				},
			},
		},
		{
			Date:  "2025-12-22",
			Title: "City Tour in Dubai",
			DailyTips: dayTips(25, 17, "Clear", "Dubai, UAE",
				[]string{"Sunscreen", "Camera", "Comfortable walking shoes"},
				"City tour covering Dubai's main attractions."),
			Items: []models.ItineraryItem{
				{
					ID:          "4",
					Time:        "09:00",
					Location:    "Dubai",
					Title:       "City Tour",
					Description: "City tour in Dubai.",
					Photo:       "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?q=80&w=1000",
					Category:    models.CategoryActivity,
					Date:        "2025-12-22",
				},
			},
		},
		{
			Date:  "2025-12-23",
			Title: "Day Trip to Abu Dhabi",
			DailyTips: dayTips(24, 15, "Breezy", "Abu Dhabi, UAE",
				[]string{"Conservative clothing", "Sunglasses", "Headscarf (Women)"},
				"Day trip to Abu Dhabi."),
			Items: []models.ItineraryItem{
				{
					ID:          "5",
					Time:        "08:00",
					Location:    "Abu Dhabi",
					Title:       "Day Trip to Abu Dhabi",
					Description: "Day trip to Abu Dhabi.",
					Photo:       "https://images.unsplash.com/photo-1512632578888-169bbbc64f33?q=80&w=1000",
					Category:    models.CategoryActivity,
					Date:        "2025-12-23",
				},
			},
		},
		{
			Date:  "2025-12-24",
			Title: "Flight to Muscat",
			DailyTips: dayTips(26, 18, "Sunny", "Dubai, UAE",
				[]string{"Passport", "Boarding pass"},
				"Flight WY610 departs at 17:15, arrives in Muscat at 18:30."),
			Items: []models.ItineraryItem{
				{
					ID:          "6",
					Time:        "17:15",
					Location:    "DXB to MCT",
					Title:       "Flight WY610 to Muscat",
					Description: "Flight WY610 Dubai to Muscat. Departure: 17:15, Arrival: 18:30.",
					Photo:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
					Category:    models.CategoryFlight,
					Date:        "2025-12-24",
				},
				{
					ID:          "7",
					Time:        "18:30",
					Location:    "Muscat International Airport",
					Title:       "Arrival in Muscat",
					Description: "Land in Muscat. Transfer to hotel.",
					Photo:       "https://images.unsplash.com/photo-1569154941061-e231b4725ef1?q=80&w=1000",
					Category:    models.CategoryTransport,
					Date:        "2025-12-24",
				},
				{
					ID:          "8",
					Time:        "19:30",
					Location:    "Mecure Muscat",
					Title:       "Hotel Check-in",
					Description: "Check in at Mecure Muscat.",
					Photo:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=1000",
					Category:    models.CategoryHotel,
					Date:        "2025-12-24",
				},
			},
		},
		{
			Date:  "2025-12-25",
			Title: "Free Time in Muscat",
			DailyTips: dayTips(25, 19, "Coastal", "Muscat, Oman",
				[]string{"Swimming gear", "Snorkelling equipment"},
				"Free time in Muscat. Mass and snorkelling activities."),
			Items: []models.ItineraryItem{
				{
					ID:          "9",
					Time:        "10:00",
					Location:    "Church",
					Title:       "Mass",
					Description: "Attend mass service.",
					Photo:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryMass,
					Date:        "2025-12-25",
				},
				{
					ID:          "10",
					Time:        "14:00",
					Location:    "Muscat",
					Title:       "Snorkelling",
					Description: "Snorkelling activity.",
					Photo:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?q=80&w=1000",
					Category:    models.CategoryActivity,
					Date:        "2025-12-25",
				},
				{
					ID:          "11",
					Time:        "20:00",
					Location:    "Mecure Muscat",
					Title:       "Hotel Stay",
					Description: "Stay at Mecure Muscat.",
					Photo:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?q=80&w=1000",
					Category:    models.CategoryHotel,
					Date:        "2025-12-25",
				},
			},
		},
		{
			Date:  "2025-12-26",
			Title: "Drive to Nizwa",
			DailyTips: dayTips(22, 12, "Dry", "Nizwa, Oman",
				[]string{"Cash for dates/spices", "Camera", "Walking shoes"},
				"Drive to Nizwa and nearby villages. Hotel: Greenview hotel in Jabal Akhdar (dinner not included)."),
			Items: []models.ItineraryItem{
				{
					ID:          "12",
					Time:        "09:30",
					Location:    "Nizwa",
					Title:       "Drive to Nizwa + Nearby Villages",
					Description: "Drive to Nizwa and visit nearby villages.",
					Photo:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryActivity,
					Date:        "2025-12-26",
					ReadMoreLinks: []models.ReadMoreLink{
						{Label: "Oman Tourism Guide", URL: "https://www.omantourism.gov.om/wps/portal/mot/tourism/oman/home/experiences/culture/nizwa-fort"},
						{Label: "Wikipedia - Nizwa Fort", URL: "https://en.wikipedia.org/wiki/Nizwa_Fort"},
					},
				},
				{
					ID:          "13",
					Time:        "18:00",
					Location:    "Greenview Hotel, Jabal Akhdar",
					Title:       "Hotel Check-in",
					Description: "Check in at Greenview hotel in Jabal Akhdar. Dinner not included.",
					Photo:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryHotel,
					Date:        "2025-12-26",
				},
			},
		},
		{
			Date:  "2025-12-27",
			Title: "Jabal Akhdar to Wahiba Sands",
			DailyTips: dayTips(14, 4, "Chilly", "Jebel Akhdar, Oman",
				[]string{"Winter jacket", "Gloves", "Lip balm", "Warm clothing for stargazing"},
				"Hiking in Al Aqur (Rose Village), Al Ayn, and Ash Shirayjah from 9-10am. Hotel check-in at Al Salam Desert Camp at 3pm. Camel riding from 4-6pm. Dinner at camp from 6:30-7:30pm. Star gazing from 8-11pm."),
			Items: []models.ItineraryItem{
				{
					ID:              "14",
					Time:            "09:00",
					Location:        "Al Aqur (Rose Village), Al Ayn, and Ash Shirayjah",
					Title:           "Hiking in Al Aqur (Rose Village), Al Ayn, and Ash Shirayjah",
					Description:     "Hiking in Al Aqur (Rose Village), Al Ayn, and Ash Shirayjah.",
					LongDescription: "Explore the beautiful mountain villages of Al Aqur (Rose Village), Al Ayn, and Ash Shirayjah through guided hiking trails. Experience the traditional Omani architecture and stunning terraced gardens.",
					OpeningHours:    "9:00 AM - 10:00 AM",
					Tips:            []string{"Wear comfortable hiking shoes.", "Bring water and snacks.", "Camera recommended for scenic views."},
					Photo:           "https://images.unsplash.com/photo-1496483353456-90997957cf99?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
					Category:        models.CategoryActivity,
					Date:            "2025-12-27",
				},
				{
					ID:              "15",
					Time:            "15:00",
					Location:        "Al Salam Desert Camp, Wahiba Sands",
					Title:           "Hotel Check-in at Al Salam Desert Camp",
					Description:     "Check in at Al Salam Desert Camp.",
					LongDescription: "Check in at Al Salam Desert Camp in Wahiba Sands. Settle into your desert accommodation and prepare for an evening of activities.",
					OpeningHours:    "Check-in 3:00 PM",
					Tips:            []string{"Dinner is included in your stay.", "Prepare for star gazing later in the evening."},
					Photo:           "https://images.unsplash.com/photo-1473580044384-7ba9967e16a0?q=80&w=1000",
					Category:        models.CategoryHotel,
					Date:            "2025-12-27",
				},
				{
					ID:              "16",
					Time:            "16:00",
					Location:        "Wahiba Sands",
					Title:           "Camel Riding",
					Description:     "Camel riding experience in the desert.",
					LongDescription: "Enjoy a traditional camel riding experience through the Wahiba Sands desert. Experience the gentle sway of the camel as you traverse the golden dunes.",
					OpeningHours:    "4:00 PM - 6:00 PM",
					Tips:            []string{"Wear comfortable clothing.", "Bring a hat and sunscreen.", "Follow the guide's instructions for safety."},
					Photo:           "https://images.unsplash.com/photo-1509316785289-025f5b846b35?w=1000&q=80&auto=format&fit=crop",
					Category:        models.CategoryActivity,
					Date:            "2025-12-27",
				},
				{
					ID:              "17",
					Time:            "18:30",
					Location:        "Al Salam Desert Camp, Wahiba Sands",
					Title:           "Dinner",
					Description:     "Dinner at Al Salam Desert Camp.",
					LongDescription: "Enjoy a traditional Omani dinner at the desert camp. Experience authentic local cuisine under the stars.",
					OpeningHours:    "6:30 PM - 7:30 PM",
					Tips:            []string{"Dinner is included.", "Try traditional Omani dishes.", "Enjoy the desert camp atmosphere."},
					Photo:           "https://images.unsplash.com/photo-1504674900247-0877df9cc836?w=1000&q=80&auto=format&fit=crop",
					Category:        models.CategoryActivity,
					Date:            "2025-12-27",
				},
				{
					ID:              "18",
					Time:            "20:00",
					Location:        "Al Salam Desert Camp, Wahiba Sands",
					Title:           "Star Gazing",
					Description:     "Star gazing in the desert.",
					LongDescription: "Experience the clear desert skies with guided star gazing. The remote location of Wahiba Sands offers excellent visibility of the night sky. Duration: 8:00 PM - 11:00 PM.",
					OpeningHours:    "8:00 PM - 11:00 PM",
					Tips:            []string{"Bring warm clothing as desert nights can be cold.", "Binoculars or telescope recommended if available.", "Perfect for photography enthusiasts."},
					Photo:           "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?w=1000&q=80&auto=format&fit=crop",
					Category:        models.CategoryActivity,
					Date:            "2025-12-27",
				},
			},
		},
		{
			Date:  "2025-12-28",
			Title: "Wahiba Sands to Muscat",
			DailyTips: dayTips(27, 10, "Clear", "Wahiba Sands, Oman",
				[]string{"Swimming gear", "Towel", "Modest clothing for mass"},
				"Leave Wahiba Sands at 8am. Quick stops in Sur, Wadi Shab, and Bimmah Sinkhole. Arrive at Holy Spirit Church for mass at 7pm."),
			Items: []models.ItineraryItem{
				{
					ID:          "19",
					Time:        "08:00",
					Location:    "Wahiba Sands",
					Title:       "Leave Wahiba Sands",
					Description: "Depart from Wahiba Sands.",
					Photo:       "https://images.unsplash.com/photo-1473580044384-7ba9967e16a0?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryTransport,
					Date:        "2025-12-28",
				},
				{
					ID:          "20",
					Time:        "10:00",
					Location:    "Sur",
					Title:       "Quick Stop in Sur",
					Description: "Quick stop in Sur.",
					Photo:       "https://images.unsplash.com/photo-1516026672322-bc52d61a55d5?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryActivity,
					Date:        "2025-12-28",
				},
				{
					ID:          "21",
					Time:        "12:00",
					Location:    "Wadi Shab",
					Title:       "Wadi Shab",
					Description: "Visit Wadi Shab.",
					Photo:       "https://images.unsplash.com/photo-1500534314209-a25ddb2bd429?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
					Category:    models.CategoryActivity,
					Date:        "2025-12-28",
				},
				{
					ID:          "22",
					Time:        "14:00",
					Location:    "Bimmah Sinkhole",
					Title:       "Quick Stop in Bimmah Sinkhole",
					Description: "Quick stop in Bimmah Sinkhole.",
					Photo:       "https://images.unsplash.com/photo-1483683804023-6ccdb62f86ef?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
					Category:    models.CategoryActivity,
					Date:        "2025-12-28",
				},
				{
					ID:          "23",
					Time:        "19:00",
					Location:    "Holy Spirit Church",
					Title:       "Mass",
					Description: "Arrive at Holy Spirit Church for mass at 7pm.",
					Photo:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryMass,
					Date:        "2025-12-28",
				},
				{
					ID:          "24",
					Time:        "20:00",
					Location:    "Mecure Muscat",
					Title:       "Hotel Check-in",
					Description: "Check in at Mecure Muscat.",
					Photo:       "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryHotel,
					Date:        "2025-12-28",
				},
			},
		},
		{
			Date:  "2025-12-29",
			Title: "Muscat City Tour & Departure",
			DailyTips: dayTips(24, 18, "Humid", "Muscat, Oman",
				[]string{"Passport", "Boarding pass", "Packed luggage"},
				"Muscat City tour. Transfer to airport at 8:30pm. Flight QR1125 departs at 11pm."),
			Items: []models.ItineraryItem{
				{
					ID:          "26",
					Time:        "20:30",
					Location:    "Muscat International Airport",
					Title:       "Transfer to Airport",
					Description: "Transfer to airport at 8:30pm.",
					Photo:       "https://images.unsplash.com/photo-1569154941061-e231b4725ef1?w=1000&q=80&auto=format&fit=crop",
					Category:    models.CategoryTransport,
					Date:        "2025-12-29",
				},
				{
					ID:          "27",
					Time:        "23:00",
					Location:    "Muscat International Airport",
					Title:       "Flight QR1125",
					Description: "Flight QR1125 departure at 11pm.",
					Photo:       "https://images.unsplash.com/photo-1469474968028-56623f02e42e?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
					Category:    models.CategoryFlight,
					Date:        "2025-12-29",
				},
			},
		},
	}
}

func dayTips(high, low int, condition, place string, bring []string, aware string) *models.DailyTips {
	return &models.DailyTips{
		Weather: models.DayWeather{
			High:          high,
			Low:           low,
			Condition:     condition,
			ConditionIcon: IconForCondition(condition),
			ReportURL:     GoogleWeatherURL(place),
		},
		Bring: bring,
		Aware: aware,
	}
}
