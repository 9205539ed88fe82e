package models

import "gorm.io/gorm"

// SeedServices inserts the default catalog (prices in INR). It only runs
// against an empty catalog so restarts don't duplicate rows.
func SeedServices(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&Service{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	services := []Service{
		{Name: "Plumbing", Description: "Fix leaks, unclog drains, and install pipes", Price: 1500},
		{Name: "Cleaning", Description: "Deep house cleaning, dusting, and vacuuming", Price: 2500},
		{Name: "Electrical", Description: "Wiring repairs, outlet installations, and lighting setup", Price: 2000},
		{Name: "Painting", Description: "Interior/exterior painting, wall touch-ups, and color consultations", Price: 4500},
		{Name: "Gardening", Description: "Lawn mowing, planting, weeding, and garden maintenance", Price: 2200},
		{Name: "HVAC Repair", Description: "AC/heating system fixes, filter changes, and thermostat installation", Price: 2500},
		{Name: "Handyman", Description: "General repairs, furniture assembly, and small home fixes", Price: 3500},
		{Name: "Carpentry", Description: "Woodwork repairs, furniture making, and cabinet installation", Price: 3800},
		{Name: "Pest Control", Description: "Safe pest elimination for home and kitchen areas", Price: 1800},
		{Name: "Appliance Repair", Description: "Fixing refrigerators, washing machines, and other appliances", Price: 4200},
		{Name: "Interior Design", Description: "Home decor consultation, layout planning, and styling advice", Price: 3000},
	}

	if err := db.Create(&services).Error; err != nil {
		return 0, err
	}
	return len(services), nil
}
