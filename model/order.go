package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderLine keeps lessonId and qty exactly as the client submitted them:
// lessonId may be an ObjectID hex string, a number or any raw string, qty a
// number or a numeric string. Interpretation happens at decrement time.
type OrderLine struct {
	LessonId interface{} `json:"lessonId" bson:"lessonId"`
	Qty      interface{} `json:"qty" bson:"qty"`
}

type Order struct {
	Id            primitive.ObjectID `json:"_id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	LessonIDs     []OrderLine        `json:"lessonIDs" bson:"lessonIDs"`
	NumberOfSpace int64              `json:"numberOfSpace" bson:"numberOfSpace"`
}
