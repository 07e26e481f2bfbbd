package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"spellbound/internal/config"
	"spellbound/internal/database"
	"spellbound/internal/models"
	"spellbound/internal/repository"
	"spellbound/internal/service"
)

func main() {
	childName := flag.String("child", "", "Child name (required)")
	toEmail := flag.String("to", "", "Recipient email address (required)")
	flag.Parse()

	if *childName == "" || *toEmail == "" {
		fmt.Println("Usage: report -child <name> -to <email>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	profileService, err := service.NewProfileService(repository.NewSaveRepo(db))
	if err != nil {
		log.Fatalf("Failed to load family save state: %v", err)
	}

	var profile *models.ChildProfile
	for _, p := range profileService.Profiles() {
		if strings.EqualFold(p.Name, *childName) {
			profile = &p
			break
		}
	}
	if profile == nil {
		log.Fatalf("No child profile named %q", *childName)
	}

	savedLists, err := profileService.SavedWordSets(profile.ID)
	if err != nil {
		log.Fatalf("Failed to load saved word lists: %v", err)
	}

	reportService, err := service.NewReportService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName)
	if err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}
	if !reportService.IsEnabled() {
		log.Fatal("Report service disabled: set SES_FROM_EMAIL to send progress reports")
	}

	summary := service.ProgressSummary{
		ChildName:  profile.Name,
		Grade:      profile.Grade,
		Level:      profile.Level,
		XP:         profile.XP,
		Coins:      profile.Coins,
		SavedLists: len(savedLists),
	}
	if err := reportService.SendProgressReport(context.Background(), *toEmail, summary); err != nil {
		log.Fatalf("Failed to send progress report: %v", err)
	}

	fmt.Printf("Progress report for %s sent to %s\n", profile.Name, *toEmail)
}
