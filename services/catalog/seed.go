package catalog

import "hrp/models"

// SeedEntries is the bundled catalog a fresh deployment starts with. Rates
// are in the smallest currency unit.
var SeedEntries = []models.CatalogEntry{
	{ID: "1", Type: models.ItemTypePhotographer, Name: "Arif Rahman", DailyRate: 4000000, Grade: "A", ProfilePic: "/images/talent/arif.jpg", Location: "Jakarta"},
	{ID: "2", Type: models.ItemTypePhotographer, Name: "Bella Santoso", DailyRate: 3500000, Grade: "A", ProfilePic: "/images/talent/bella.jpg", Location: "Jakarta"},
	{ID: "3", Type: models.ItemTypePhotographer, Name: "Chandra Wijaya", DailyRate: 2750000, Grade: "B", ProfilePic: "/images/talent/chandra.jpg", Location: "Bandung"},
	{ID: "4", Type: models.ItemTypePhotographer, Name: "Dewi Lestari", DailyRate: 2000000, Grade: "B", ProfilePic: "/images/talent/dewi.jpg", Location: "Surabaya"},

	{ID: "1", Type: models.ItemTypeVideographer, Name: "Eko Prasetyo", DailyRate: 4500000, Grade: "A", ProfilePic: "/images/talent/eko.jpg", Location: "Jakarta"},
	{ID: "2", Type: models.ItemTypeVideographer, Name: "Fajar Nugroho", DailyRate: 3250000, Grade: "B", ProfilePic: "/images/talent/fajar.jpg", Location: "Bandung"},
	{ID: "3", Type: models.ItemTypeVideographer, Name: "Gita Maharani", DailyRate: 3000000, Grade: "B", ProfilePic: "/images/talent/gita.jpg", Location: "Surabaya"},

	{ID: "e1", Type: models.ItemTypeEquipment, Name: "Sony A7 IV Kit", DailyRate: 250000, Location: "Jakarta"},
	{ID: "e2", Type: models.ItemTypeEquipment, Name: "DJI Ronin RS3", DailyRate: 150000, Location: "Jakarta"},
	{ID: "e3", Type: models.ItemTypeEquipment, Name: "Godox Lighting Set", DailyRate: 100000, Location: "Bandung"},
	{ID: "e4", Type: models.ItemTypeEquipment, Name: "DJI Mavic 3 Drone", DailyRate: 500000, Location: "Jakarta"},

	{ID: "t1", Type: models.ItemTypeTransport, Name: "Crew Van (8 seats)", DailyRate: 750000, Location: "Jakarta"},
	{ID: "t2", Type: models.ItemTypeTransport, Name: "Equipment Truck", DailyRate: 1000000, Location: "Jakarta"},
	{ID: "t3", Type: models.ItemTypeTransport, Name: "City Car", DailyRate: 400000, Location: "Bandung"},
}
