package utils

import "github.com/google/uuid"

// TraceIDGenerator produces request trace ids. UUIDv7 ids sort by creation
// time, which keeps related log lines adjacent.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

// Generate returns a UUIDv7 string, or a random UUIDv4 if the v7 clock
// source fails.
func (g *TraceIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
