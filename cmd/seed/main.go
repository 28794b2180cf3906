package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"after-school-api/config"
	"after-school-api/database"
	"after-school-api/model"
)

// The fixed catalog the site launches with: ten lessons, five spaces each.
var lessons = []model.Lesson{
	{LessonId: 1, Subject: "Math", Location: "London", Price: 100, Spaces: 5, Icon: "fa-calculator"},
	{LessonId: 2, Subject: "English", Location: "Bristol", Price: 80, Spaces: 5, Icon: "fa-book"},
	{LessonId: 3, Subject: "Science", Location: "Oxford", Price: 90, Spaces: 5, Icon: "fa-flask"},
	{LessonId: 4, Subject: "Art", Location: "Manchester", Price: 70, Spaces: 5, Icon: "fa-paint-brush"},
	{LessonId: 5, Subject: "Music", Location: "Liverpool", Price: 85, Spaces: 5, Icon: "fa-music"},
	{LessonId: 6, Subject: "Drama", Location: "York", Price: 65, Spaces: 5, Icon: "fa-theater-masks"},
	{LessonId: 7, Subject: "Coding", Location: "Cambridge", Price: 120, Spaces: 5, Icon: "fa-laptop-code"},
	{LessonId: 8, Subject: "Chess", Location: "Leeds", Price: 50, Spaces: 5, Icon: "fa-chess"},
	{LessonId: 9, Subject: "Spanish", Location: "Glasgow", Price: 75, Spaces: 5, Icon: "fa-language"},
	{LessonId: 10, Subject: "Robotics", Location: "Birmingham", Price: 110, Spaces: 5, Icon: "fa-robot"},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("mongo disconnect failed: %v", err)
		}
	}()

	for i := range lessons {
		lessons[i].Id = primitive.NewObjectID()
	}

	db := client.Database(cfg.Database)

	if err := database.NewMongoLessonStore(db).ReplaceAll(ctx, lessons); err != nil {
		log.Fatalf("seeding lessons failed: %v", err)
	}

	if err := database.NewMongoOrderStore(db).Clear(ctx); err != nil {
		log.Fatalf("clearing orders failed: %v", err)
	}

	log.Printf("seeded %d lessons into %q, orders cleared", len(lessons), cfg.Database)
}
