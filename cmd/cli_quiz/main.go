package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"scientist-twin/internal/config"
	"scientist-twin/internal/llm"
	"scientist-twin/internal/repository"
	"scientist-twin/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	scientistRepo := repository.NewFileScientistRepository(cfg.ScientistDBPath)
	scientists, err := scientistRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("load scientists: %v", err)
	}

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, log.Default())
	}

	narrator := service.NewNarrativeBuilder(llmClient, time.Duration(cfg.LLMTimeoutSecs)*time.Second)
	engine := service.NewMatchingEngine(scientists, narrator)
	quizSvc := service.NewQuizService(service.NewMemoryQuizSessionStore(), time.Hour)

	fmt.Printf("===== Scientist Twin (%d scientists loaded) =====\n\n", engine.PoolSize())
	fmt.Print("Pick a domain (cosmos/quantum/life/earth/engineering, blank for all): ")
	domainKey, _ := reader.ReadString('\n')
	domainKey = strings.TrimSpace(domainKey)

	session, question, err := quizSvc.Start(domainKey)
	if err != nil {
		log.Fatalf("start quiz: %v", err)
	}

	total := len(service.Questions())
	for i := 0; ; i++ {
		fmt.Printf("\n[%d/%d] %s\n", i+1, total, question.Text)
		for j, opt := range question.Options {
			fmt.Printf("  [%d] %s\n", j+1, opt.Text)
		}
		fmt.Print("Your answer: ")
		line, _ := reader.ReadString('\n')
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(question.Options) {
			fmt.Println("Pick a number from the list.")
			i--
			continue
		}

		_, next, done, err := quizSvc.Answer(session.ID, choice-1)
		if err != nil {
			log.Fatalf("record answer: %v", err)
		}
		if done {
			break
		}
		question = *next
	}

	session, err = quizSvc.Session(session.ID)
	if err != nil {
		log.Fatalf("load session: %v", err)
	}
	profile, err := quizSvc.BuildProfile(session)
	if err != nil {
		log.Fatalf("build profile: %v", err)
	}

	fmt.Println("\nFinding your scientist twin...")
	results := engine.FullMatches(ctx, profile, session.Domain, nil, 0)

	for rank, r := range results {
		fmt.Printf("\n===== #%d %s (%s) - %s, score %.2f =====\n",
			rank+1, r.Name, r.Field, r.MatchQuality, r.Score)
		for _, res := range r.Resonances {
			fmt.Printf("  + %s: %s\n", res.Trait, res.Explanation)
		}
		for _, con := range r.Contrasts {
			fmt.Printf("  - %s: %s\n", con.Trait, con.Explanation)
		}
		if r.WorkingStyle != "" {
			fmt.Printf("  Working style: %s\n", r.WorkingStyle)
		}
		if r.CharacterMoment != "" {
			fmt.Printf("  Defining moment: %s\n", r.CharacterMoment)
		}
		fmt.Printf("  More: %s\n", r.WikiURL)
	}
}
