//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ProfileRepository=ProfileRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const Name = "profile"

const (
	ReferenceKindPost     ReferenceKind = "post"
	ReferenceKindReview   ReferenceKind = "review"
	ReferenceKindFavorite ReferenceKind = "favorite"
)

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileAlreadyExists   = errors.New("profile already exists")
	ErrProfileVersionConflict = errors.New("profile version conflict")
	ErrReferenceNotFound      = errors.New("reference not found")
	ErrUnknownReferenceKind   = errors.New("unknown reference kind")
)

type (
	ProfileID struct{ uuid.UUID }
	UserID    struct{ uuid.UUID }

	ReferenceKind string

	// Profile keeps ordered references to objects owned by a user. Version grows with every stored change.
	Profile struct {
		ID         ProfileID
		OwnerID    UserID
		PictureRef *string
		Posts      []string
		Reviews    []string
		Favorites  []string
		Version    int
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	FindProfileSpecification struct {
		ID      *ProfileID
		OwnerID *UserID
	}

	ProfileRepository interface {
		NextID() ProfileID
		// Store inserts a new profile, ErrProfileAlreadyExists is returned if the owner already has one.
		Store(context.Context, *Profile) error
		FindOne(context.Context, FindProfileSpecification) (*Profile, error)
		// Update writes the profile only if the stored version equals profile.Version and increments it.
		Update(context.Context, *Profile) error
		Delete(context.Context, ProfileID) error
	}
)

func NewProfile(id ProfileID, ownerID UserID, pictureRef *string) *Profile {
	return &Profile{
		ID:         id,
		OwnerID:    ownerID,
		PictureRef: pictureRef,
		Posts:      []string{},
		Reviews:    []string{},
		Favorites:  []string{},
	}
}

func ParseReferenceKind(plural string) (ReferenceKind, error) {
	for _, kind := range []ReferenceKind{ReferenceKindPost, ReferenceKindReview, ReferenceKindFavorite} {
		if kind.Plural() == plural {
			return kind, nil
		}
	}

	return "", ErrUnknownReferenceKind
}

func (k ReferenceKind) Plural() string {
	return string(k) + "s"
}

func (p *Profile) References(kind ReferenceKind) []string {
	switch kind {
	case ReferenceKindPost:
		return p.Posts
	case ReferenceKindReview:
		return p.Reviews
	case ReferenceKindFavorite:
		return p.Favorites
	default:
		return nil
	}
}

func (p *Profile) AddReference(kind ReferenceKind, id string) error {
	refs, err := p.references(kind)
	if err != nil {
		return err
	}

	*refs = append(*refs, id)
	return nil
}

// RemoveReference removes the first occurrence of id.
func (p *Profile) RemoveReference(kind ReferenceKind, id string) error {
	refs, err := p.references(kind)
	if err != nil {
		return err
	}

	for i, ref := range *refs {
		if ref != id {
			continue
		}

		updated := make([]string, 0, len(*refs)-1)
		updated = append(updated, (*refs)[:i]...)
		*refs = append(updated, (*refs)[i+1:]...)
		return nil
	}

	return ErrReferenceNotFound
}

func (p *Profile) references(kind ReferenceKind) (*[]string, error) {
	switch kind {
	case ReferenceKindPost:
		return &p.Posts, nil
	case ReferenceKindReview:
		return &p.Reviews, nil
	case ReferenceKindFavorite:
		return &p.Favorites, nil
	default:
		return nil, ErrUnknownReferenceKind
	}
}
