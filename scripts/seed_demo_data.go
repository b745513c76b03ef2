package main

import (
	"fmt"
	"log"

	"staynest-server/storage"
)

func main() {
	db := storage.InitializeDB()

	if err := storage.SeedDemoData(db); err != nil {
		log.Fatalf("Error seeding demo data: %v", err)
	}

	fmt.Println("Demo data seeding completed successfully!")
}
