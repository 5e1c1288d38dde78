package catalog

import "github.com/alrooliya/workshop-booking/internal/locale"

// Default returns the workshop's current service list. The data is static
// configuration; it never changes at runtime.
func Default() *Catalog {
	c, err := New([]ServiceOffering{
		{
			ID:       "brakes",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Brake Service & Repair",
				locale.Arabic:  "خدمة وإصلاح الفرامل",
			},
			Description: map[locale.Locale]string{
				locale.English: "Complete brake system diagnosis and repair",
				locale.Arabic:  "تشخيص وإصلاح نظام الفرامل الكامل",
			},
		},
		{
			ID:       "oil-change",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Oil Change Service",
				locale.Arabic:  "خدمة تغيير الزيت",
			},
			Description: map[locale.Locale]string{
				locale.English: "Regular oil changes and filter replacements",
				locale.Arabic:  "تغيير الزيت المنتظم واستبدال الفلاتر",
			},
		},
		{
			ID:       "suspension",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Steering & Suspension",
				locale.Arabic:  "التوجيه والتعليق",
			},
			Description: map[locale.Locale]string{
				locale.English: "Steering and suspension system repair",
				locale.Arabic:  "إصلاح نظام التوجيه والتعليق",
			},
		},
		{
			ID:       "tyres",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Tyre Services",
				locale.Arabic:  "خدمات الإطارات",
			},
			Description: map[locale.Locale]string{
				locale.English: "Tyre installation, balancing, and alignment",
				locale.Arabic:  "تركيب وموازنة ومحاذاة الإطارات",
			},
		},
		{
			ID:       "diagnostics",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Engine Diagnostics",
				locale.Arabic:  "تشخيص المحرك",
			},
			Description: map[locale.Locale]string{
				locale.English: "Advanced engine diagnostic services",
				locale.Arabic:  "خدمات تشخيص المحرك المتقدمة",
			},
		},
		{
			ID:       "filters",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Filter Replacement",
				locale.Arabic:  "استبدال الفلاتر",
			},
			Description: map[locale.Locale]string{
				locale.English: "Air and cabin filter replacement services",
				locale.Arabic:  "خدمات استبدال فلاتر الهواء والمقصورة",
			},
		},
		{
			ID:       "exhaust",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Exhaust Repair",
				locale.Arabic:  "إصلاح العادم",
			},
			Description: map[locale.Locale]string{
				locale.English: "Complete exhaust system repair and maintenance",
				locale.Arabic:  "إصلاح وصيانة نظام العادم الكامل",
			},
		},
		{
			ID:       "bodywork",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Body Work & Painting",
				locale.Arabic:  "أعمال الهيكل والدهان",
			},
			Description: map[locale.Locale]string{
				locale.English: "Professional denting, painting, and bodywork",
				locale.Arabic:  "أعمال السمكرة والدهان والهيكل المهنية",
			},
		},
		{
			ID:       "machining",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Precision Machining",
				locale.Arabic:  "أعمال الخراطة",
			},
			Description: map[locale.Locale]string{
				locale.English: "Precision lathe work and machining services",
				locale.Arabic:  "أعمال الخراطة والتشغيل الدقيقة",
			},
		},
		{
			ID:       "disc-resurfacing",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Brake Disc Resurfacing",
				locale.Arabic:  "تجديد أقراص الفرامل",
			},
			Description: map[locale.Locale]string{
				locale.English: "Professional brake disc resurfacing service",
				locale.Arabic:  "خدمة تجديد أقراص الفرامل المهنية",
			},
		},
		{
			ID:       "welding",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Welding Services",
				locale.Arabic:  "خدمات اللحام",
			},
			Description: map[locale.Locale]string{
				locale.English: "Professional welding and metalwork",
				locale.Arabic:  "خدمات اللحام وأعمال المعادن المهنية",
			},
		},
		{
			ID:       "transmission",
			Category: CategoryVehicle,
			DisplayName: map[locale.Locale]string{
				locale.English: "Transmission Repair",
				locale.Arabic:  "إصلاح ناقل الحركة",
			},
			Description: map[locale.Locale]string{
				locale.English: "Manual transmission repair and maintenance",
				locale.Arabic:  "إصلاح وصيانة ناقل الحركة اليدوي",
			},
		},
		{
			ID:       "industrial-equipment",
			Category: CategoryIndustrial,
			DisplayName: map[locale.Locale]string{
				locale.English: "Industrial Equipment",
				locale.Arabic:  "المعدات الصناعية",
			},
			Description: map[locale.Locale]string{
				locale.English: "Industrial appliance repair and maintenance",
				locale.Arabic:  "إصلاح وصيانة المعدات الصناعية",
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
