package main

import (
	"github.com/gauravjat135/galaxy-medical-store/internal/config"
	"github.com/gauravjat135/galaxy-medical-store/internal/constants"
	"github.com/gauravjat135/galaxy-medical-store/internal/logger"
	"github.com/gauravjat135/galaxy-medical-store/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	products := []models.Product{
		{
			Name:          "Paracetamol 500mg",
			Description:   "Pain reliever and fever reducer, strip of 15 tablets",
			Category:      constants.ProductCategoryMedicine,
			Dosage:        "500mg, 1-2 tablets every 4-6 hours",
			Manufacturer:  "Cipla",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
			StockQuantity: 200,
			IsActive:      true,
		},
		{
			Name:          "Azithromycin 250mg",
			Description:   "Antibiotic, strip of 6 tablets, prescription required",
			Category:      constants.ProductCategoryMedicine,
			Dosage:        "250mg once daily",
			Manufacturer:  "Sun Pharma",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(120)),
			StockQuantity: 80,
			IsActive:      true,
		},
		{
			Name:          "Cetirizine 10mg",
			Description:   "Antihistamine for allergy relief, strip of 10 tablets",
			Category:      constants.ProductCategoryMedicine,
			Dosage:        "10mg once daily",
			Manufacturer:  "Dr. Reddy's",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(45)),
			StockQuantity: 150,
			IsActive:      true,
		},
		{
			Name:          "ORS Electrolyte Powder",
			Description:   "Oral rehydration salts, pack of 5 sachets",
			Category:      constants.ProductCategoryMedicine,
			Dosage:        "One sachet in 200ml water",
			Manufacturer:  "FDC",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(60)),
			StockQuantity: 120,
			IsActive:      true,
		},
		{
			Name:          "Digital Thermometer",
			Description:   "Fast read digital thermometer with fever alarm",
			Category:      constants.ProductCategoryEssentials,
			Manufacturer:  "Omron",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(250)),
			StockQuantity: 40,
			IsActive:      true,
		},
		{
			Name:          "Surgical Face Masks",
			Description:   "3-ply disposable masks, box of 100",
			Category:      constants.ProductCategoryEssentials,
			Manufacturer:  "Venus",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(180)),
			StockQuantity: 300,
			IsActive:      true,
		},
		{
			Name:          "Hand Sanitizer 500ml",
			Description:   "70% alcohol based sanitizer with pump",
			Category:      constants.ProductCategoryEssentials,
			Manufacturer:  "Dettol",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(150)),
			StockQuantity: 90,
			IsActive:      true,
		},
		{
			Name:          "First Aid Kit",
			Description:   "Compact home first aid kit, 42 pieces",
			Category:      constants.ProductCategoryEssentials,
			Manufacturer:  "MediPlus",
			Price:         models.NewMoneyFromDecimal(decimal.NewFromInt(450)),
			StockQuantity: 25,
			IsActive:      true,
		},
	}

	for _, p := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", p.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&p).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			} else {
				stdLog.Printf("Created product: %s", p.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", p.Name)
		}
	}

	employees := []models.Employee{
		{Name: "Asha Verma", Email: "asha.verma@galaxymedical.example", Position: "Pharmacist"},
		{Name: "Rohit Sharma", Email: "rohit.sharma@galaxymedical.example", Position: "Store Manager"},
		{Name: "Neha Gupta", Email: "neha.gupta@galaxymedical.example", Position: "Delivery Coordinator"},
	}

	for _, e := range employees {
		var existing models.Employee
		if err := models.DB.Where("email = ?", e.Email).First(&existing).Error; err != nil {
			if err := models.DB.Create(&e).Error; err != nil {
				stdLog.Printf("Failed to create employee %s: %v", e.Name, err)
			} else {
				stdLog.Printf("Created employee: %s", e.Name)
			}
		} else {
			stdLog.Printf("Employee already exists: %s", e.Name)
		}
	}

	stdLog.Printf("Seed completed")
}
