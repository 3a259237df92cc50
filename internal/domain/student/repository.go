package student

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("student not found")
	ErrInvalidSkill = errors.New("invalid skill")
)

// Repository stores student records. Create assigns the id and initialises
// progress over the pathway keys; the id and progress on the input are ignored.
type Repository interface {
	Create(ctx context.Context, r Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	UpdateProgress(ctx context.Context, id string, skill string) (Record, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (Record, error)
}
