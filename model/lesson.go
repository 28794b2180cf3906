package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Lesson struct {
	Id       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	LessonId int64              `json:"id" bson:"id"`
	Subject  string             `json:"subject" bson:"subject"`
	Location string             `json:"location" bson:"location"`
	Price    float64            `json:"price" bson:"price"`
	Spaces   int64              `json:"spaces" bson:"spaces"`
	Icon     string             `json:"icon" bson:"icon"`
}
