package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"team-fit/internal/config"
	"team-fit/internal/domain"
	"team-fit/internal/genome"
	"team-fit/internal/service"
)

func main() {
	teamFlag := flag.String("team", "", "comma-separated usernames of the team members")
	candidateFlag := flag.String("candidate", "", "username of the candidate")
	flag.Parse()

	if *teamFlag == "" || *candidateFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: cli_analyze -team user1,user2,... -candidate username")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	var team []string
	for _, username := range strings.Split(*teamFlag, ",") {
		if username = strings.TrimSpace(username); username != "" {
			team = append(team, username)
		}
	}

	genomeClient := genome.NewHTTPClient(cfg.BioBaseURL, cfg.SearchBaseURL, logger)
	cache := service.NewMemoryProfileCache(time.Duration(cfg.ProfileCacheTTL) * time.Minute)
	analysisSvc := service.NewAnalysisService(genomeClient, cache, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	result, err := analysisSvc.AnalyzeUsernames(ctx, team, *candidateFlag)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Team: %d members, %d distinct skills, %d languages\n",
		result.Team.TotalMembers, len(result.Team.Skills), len(result.Team.Languages))
	fmt.Printf("Candidate %s: %d redundant, %d value-add skills, %d value-add languages\n\n",
		*candidateFlag,
		result.Delta.Summary.TotalRedundantSkills,
		result.Delta.Summary.TotalValueAddSkills,
		result.Delta.Summary.TotalValueAddLanguages)

	for _, alert := range result.Alerts.RedundancyAlerts {
		fmt.Printf("[%s] %s\n", strings.ToUpper(string(alert.Severity)), alert.Message)
	}
	if alert := result.Alerts.ValueAddAlert; alert != nil {
		fmt.Println(alert.Message)
		for _, language := range alert.Languages {
			fmt.Printf("  speaks %s (%s)\n", language.LanguageName, domain.FluencyLabel(language.CandidateFluency))
		}
	}
}
