package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"team-member-service/internal/config"
	"team-member-service/internal/database"
	"team-member-service/internal/domain"
	"team-member-service/internal/repository"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	teamsCount   = 20
	membersCount = 10
)

var (
	targetHost = flag.String("target", "http://localhost:8080", "service base URL")
	rps        = flag.Int("rps", 5, "requests per second")
	duration   = flag.Duration("duration", 3*time.Minute, "attack duration")
)

type member struct {
	teamID string
	email  string
}

var (
	teams   []string
	members []member
)

// Seed пишет команды, разработчиков и участие напрямую в базу:
// HTTP API сервиса не создает сущности.
func seedData(ctx context.Context, cfg config.Config) error {
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	queries := database.New(db)
	teamRepo := repository.NewTeamRepository(db, queries)
	developerRepo := repository.NewDeveloperRepository(queries)
	userRepo := repository.NewUserRepository(queries)
	membershipRepo := repository.NewMembershipRepository(db, queries)

	log.Println("Seeding: creating teams, developers and memberships...")

	suffix := time.Now().Unix()
	for t := 1; t <= teamsCount; t++ {
		teamID := fmt.Sprintf("load-team-%d-%02d", suffix, t)
		if err := teamRepo.Create(ctx, &domain.Team{ID: teamID, Name: fmt.Sprintf("Load team %02d", t)}); err != nil {
			return err
		}

		var emails []string
		for u := 1; u <= membersCount; u++ {
			email := fmt.Sprintf("dev-%d-%d-%d@load.test", suffix, t, u)
			if err := developerRepo.Upsert(ctx, &domain.Developer{Email: email}); err != nil {
				return err
			}
			// У половины разработчиков есть пользователь платформы
			if u%2 == 0 {
				if err := userRepo.Create(ctx, &domain.User{Name: fmt.Sprintf("user_%d_%d", t, u), Mail: email}); err != nil {
					return err
				}
			}
			emails = append(emails, email)
			members = append(members, member{teamID: teamID, email: email})
		}

		if err := membershipRepo.AddMembers(ctx, teamID, emails); err != nil {
			return err
		}
		teams = append(teams, teamID)
	}

	log.Printf("Seed completed: teams=%d members=%d\n", len(teams), len(members))
	return nil
}

func removeURL(m member) string {
	return fmt.Sprintf("%s/teams/%s/members/%s/remove", *targetHost, url.PathEscape(m.teamID), url.PathEscape(m.email))
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 60% GET список участников
		if r < 0.60 {
			team := teams[rand.Intn(len(teams))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%s/members", *targetHost, url.PathEscape(team))
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		m := members[rand.Intn(len(members))]

		// 25% GET запрос подтверждения
		if r < 0.85 {
			t.Method = http.MethodGet
			t.URL = removeURL(m)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% POST подтверждение удаления
		if r < 0.95 {
			body, _ := json.Marshal(map[string]string{"op": "confirm"})
			t.Method = http.MethodPost
			t.URL = removeURL(m)
			t.Body = body
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			return nil
		}

		// 5% возвращаем участника в команду
		body, _ := json.Marshal(map[string][]string{"emails": {m.email}})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/teams/%s/members", *targetHost, url.PathEscape(m.teamID))
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: *rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", *targetHost, *duration)
	for res := range attacker.Attack(targeter, rate, *duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf(".env not found: %v", err)
	}

	if err := seedData(context.Background(), cfg); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
