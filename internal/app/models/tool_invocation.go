package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ToolInvocation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestID    string             `bson:"request_id" json:"request_id"`
	Tool         string             `bson:"tool" json:"tool"`
	PatientName  string             `bson:"patient_name,omitempty" json:"patient_name,omitempty"`
	Success      bool               `bson:"success" json:"success"`
	ErrorMessage string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	DurationMS   int64              `bson:"duration_ms" json:"duration_ms"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
