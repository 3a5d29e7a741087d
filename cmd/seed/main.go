// Command seed populates the development database with demo users, content,
// comments, and engagement relations.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"newsboard/internal/config"
	"newsboard/internal/database"
	"newsboard/internal/models"
	"newsboard/internal/seed"
)

func main() {
	users := flag.Int("users", 10, "number of users to create")
	contents := flag.Int("contents", 40, "number of content items to create")
	maxDays := flag.Int("max-days", 90, "spread content creation over the past N days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	factory := seed.NewFactory(db)
	// #nosec G404: acceptable for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	createdUsers := make([]*models.User, 0, *users)
	for i := 0; i < *users; i++ {
		u, err := factory.CreateUser()
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		createdUsers = append(createdUsers, u)
	}
	log.Printf("Created %d users", len(createdUsers))

	createdContents := make([]*models.Content, 0, *contents)
	for i := 0; i < *contents; i++ {
		author := createdUsers[rng.Intn(len(createdUsers))]
		c, err := factory.CreateContent(author, *maxDays)
		if err != nil {
			log.Fatalf("Failed to create content: %v", err)
		}
		createdContents = append(createdContents, c)
	}
	log.Printf("Created %d content items", len(createdContents))

	var comments, likes, favorites int
	for _, c := range createdContents {
		for i := 0; i < rng.Intn(6); i++ {
			commenter := createdUsers[rng.Intn(len(createdUsers))]
			cm, err := factory.CreateComment(commenter, c)
			if err != nil {
				log.Fatalf("Failed to create comment: %v", err)
			}
			comments++
			if rng.Intn(3) == 0 {
				liker := createdUsers[rng.Intn(len(createdUsers))]
				if err := factory.CreateCommentLike(liker, cm); err == nil {
					likes++
				}
			}
		}
		for _, u := range createdUsers {
			if rng.Intn(4) == 0 {
				if err := factory.CreateContentLike(u, c); err == nil {
					likes++
				}
			}
			if rng.Intn(8) == 0 {
				if err := factory.CreateFavorite(u, c); err == nil {
					favorites++
				}
			}
		}
	}
	log.Printf("Created %d comments, %d likes, %d favorites", comments, likes, favorites)
}
