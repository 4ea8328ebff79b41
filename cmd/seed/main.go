package main

import (
	"flag"
	"fmt"
	"log"

	"social_board_jwt/internal/pkg/config"
	"social_board_jwt/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// 本地开发用的测试数据填充工具：若干用户、主贴文、回复与封锁关系
func main() {
	users := flag.Int("users", 10, "number of seed users")
	postsPer := flag.Int("posts", 3, "top-level posts per user")
	flag.Parse()

	config.LoadConfig()
	cfg := config.GlobalConfig.Database
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatal(err)
	}

	userIDs := make([]string, 0, *users)
	for i := 0; i < *users; i++ {
		var id string
		err := db.QueryRowx(
			`INSERT INTO users (email, name, password, role) VALUES ($1, $2, $3, 1)
			 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id`,
			fmt.Sprintf("seed%d@example.com", i),
			fmt.Sprintf("Seed User %d", i),
			hashed,
		).Scan(&id)
		if err != nil {
			log.Fatalf("Failed to seed user %d: %v", i, err)
		}
		userIDs = append(userIDs, id)
	}
	log.Printf("Seeded %d users", len(userIDs))

	postCount := 0
	for _, uid := range userIDs {
		for p := 0; p < *postsPer; p++ {
			var postID string
			err := db.QueryRowx(
				`INSERT INTO posts (title, content, owner_id) VALUES ($1, $2, $3) RETURNING id`,
				fmt.Sprintf("Post %d", p),
				fmt.Sprintf("Seed content %d from %s", p, uid),
				uid,
			).Scan(&postID)
			if err != nil {
				log.Fatalf("Failed to seed post: %v", err)
			}
			postCount++

			// 每篇主贴文挂一条来自下一个用户的回复
			replier := userIDs[(indexOf(userIDs, uid)+1)%len(userIDs)]
			if _, err := db.Exec(
				`INSERT INTO posts (content, owner_id, parent_id) VALUES ($1, $2, $3)`,
				"Seed reply", replier, postID,
			); err != nil {
				log.Fatalf("Failed to seed reply: %v", err)
			}
		}
	}
	log.Printf("Seeded %d posts with replies", postCount)

	// 第一个用户封锁最后一个，方便手动验证动态墙过滤
	if len(userIDs) >= 2 {
		if _, err := db.Exec(
			`INSERT INTO blacklists (user_id, blocked_user_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			userIDs[0], userIDs[len(userIDs)-1],
		); err != nil {
			log.Fatalf("Failed to seed block edge: %v", err)
		}
	}

	log.Println("Seeding complete")
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return 0
}
