package models

import "time"

// ComplexPayload is the complex section of the submission payload.
type ComplexPayload struct {
	Name        string `bson:"name" json:"name"`
	Street      string `bson:"street" json:"street"`
	Province    string `bson:"province" json:"province"`
	Ward        string `bson:"ward" json:"ward"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	OpeningTime string `bson:"openingTime" json:"openingTime"` // HH:MM:SS
	ClosingTime string `bson:"closingTime" json:"closingTime"` // HH:MM:SS
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// SlotPayload is one custom time slot as the backend expects it.
type SlotPayload struct {
	StartTime string  `bson:"startTime" json:"startTime"` // HH:MM:SS
	EndTime   string  `bson:"endTime" json:"endTime"`     // HH:MM:SS
	Price     float64 `bson:"price" json:"price"`
}

// FieldPayload is one field of the submission payload.
type FieldPayload struct {
	Name            string        `bson:"name" json:"name"`
	FieldType       FieldType     `bson:"fieldType" json:"fieldType"`
	Description     string        `bson:"description" json:"description"`
	CustomTimeSlots []SlotPayload `bson:"customTimeSlots" json:"customTimeSlots"`
}

// SubmissionPayload is the single document sent to the submission endpoint.
type SubmissionPayload struct {
	Complex ComplexPayload `bson:"complex" json:"complex"`
	Fields  []FieldPayload `bson:"fields" json:"fields"`
}

// SubmissionResult is the backend acknowledgment.
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

// ComplexRecord is a submitted complex as stored by the Mongo backend.
type ComplexRecord struct {
	ID         string            `bson:"id" json:"id"`
	OperatorID string            `bson:"operatorId" json:"operatorId"`
	Payload    SubmissionPayload `bson:"payload" json:"payload"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
}
