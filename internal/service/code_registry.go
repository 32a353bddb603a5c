package service

import (
	"context"
	"crypto/rand"
	goerrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/errors"
	"tripmate/internal/model"
	"tripmate/internal/repository"
)

// codeAlphabet avoids ambiguous characters (0/O, 1/I/L).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	codeLength      = 8
	maxIssueRetries = 5
)

// CodeRegistry generates and resolves opaque trip invitation codes. Every
// trip owns exactly one code, issued once at trip creation. Issue writes
// through the given repository so the caller can run it inside the same
// transaction as the trip insert.
type CodeRegistry interface {
	Issue(ctx context.Context, codes repository.CodeRepository, tripID uuid.UUID) (*model.Code, error)
	Resolve(ctx context.Context, value string) (*model.Trip, error)
}

type codeRegistry struct {
	codeRepo repository.CodeRepository
}

// NewCodeRegistry creates a code registry.
func NewCodeRegistry(codeRepo repository.CodeRepository) CodeRegistry {
	return &codeRegistry{codeRepo: codeRepo}
}

// Issue generates a code unique across all trips. Collisions against the
// unique index are retried with a fresh value; the retry loop is internal
// and invisible to callers.
func (r *codeRegistry) Issue(ctx context.Context, codes repository.CodeRepository, tripID uuid.UUID) (*model.Code, error) {
	for attempt := 0; attempt < maxIssueRetries; attempt++ {
		code := &model.Code{
			TripID: tripID,
			Value:  generateCodeValue(),
		}
		err := codes.Create(ctx, code)
		if err == nil {
			return code, nil
		}
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return nil, fmt.Errorf("create code: %w", err)
	}
	return nil, fmt.Errorf("issue code: exhausted %d attempts", maxIssueRetries)
}

// Resolve looks up a trip by its code value. The match is exact and
// case-sensitive; unknown or malformed input maps to ErrCodeNotFound.
func (r *codeRegistry) Resolve(ctx context.Context, value string) (*model.Trip, error) {
	code, err := r.codeRepo.FindByValue(ctx, value)
	if err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrCodeNotFound
		}
		return nil, fmt.Errorf("resolve code: %w", err)
	}
	trip := code.Trip
	trip.Code = code
	return &trip, nil
}

func generateCodeValue() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
