package voucher

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("voucher name cannot be empty")
	ErrAlreadyUsed    = errors.New("voucher has already been used")
	ErrExpired        = errors.New("voucher has expired")
	ErrInactive       = errors.New("voucher template is not active")
	ErrNegativeExpiry = errors.New("validity days cannot be negative")
)

// Template defines a single redeemable benefit ("free dish X").
type Template struct {
	id          uuid.UUID
	brandID     uuid.UUID
	name        string
	description string
	isActive    bool
	totalIssued int64
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTemplate(brandID uuid.UUID, name, description string) (*Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Template{
		id:          uuid.New(),
		brandID:     brandID,
		name:        name,
		description: description,
		isActive:    true,
	}, nil
}

func ReconstructTemplate(
	id, brandID uuid.UUID,
	name, description string,
	isActive bool,
	totalIssued int64,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:          id,
		brandID:     brandID,
		name:        name,
		description: description,
		isActive:    isActive,
		totalIssued: totalIssued,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Template) ID() uuid.UUID        { return t.id }
func (t *Template) BrandID() uuid.UUID   { return t.brandID }
func (t *Template) Name() string         { return t.name }
func (t *Template) Description() string  { return t.description }
func (t *Template) IsActive() bool       { return t.isActive }
func (t *Template) TotalIssued() int64   { return t.totalIssued }
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }

// ExpiryFrom computes the expiry stamp for a voucher issued at the given
// time. Zero validity days means the voucher expires the same day it was
// issued, at the issue timestamp plus zero days.
func ExpiryFrom(issuedAt time.Time, validityDays int32) (time.Time, error) {
	if validityDays < 0 {
		return time.Time{}, ErrNegativeExpiry
	}
	return issuedAt.AddDate(0, 0, int(validityDays)), nil
}

// Instance is one user-owned redeemable unit. Terminal once used or
// expired; never mutated financially after creation.
type Instance struct {
	id         uuid.UUID
	templateID uuid.UUID
	brandID    uuid.UUID
	userID     *uuid.UUID
	createdBy  *uuid.UUID // originating bundle instance, nil for direct issues
	expiresAt  time.Time
	isUsed     bool
	usedAt     *time.Time
	createdAt  time.Time
}

func NewInstance(
	templateID, brandID uuid.UUID,
	userID *uuid.UUID,
	createdBy *uuid.UUID,
	issuedAt time.Time,
	validityDays int32,
) (*Instance, error) {
	expiresAt, err := ExpiryFrom(issuedAt, validityDays)
	if err != nil {
		return nil, err
	}
	return &Instance{
		id:         uuid.New(),
		templateID: templateID,
		brandID:    brandID,
		userID:     userID,
		createdBy:  createdBy,
		expiresAt:  expiresAt,
		createdAt:  issuedAt,
	}, nil
}

func ReconstructInstance(
	id, templateID, brandID uuid.UUID,
	userID, createdBy *uuid.UUID,
	expiresAt time.Time,
	isUsed bool,
	usedAt *time.Time,
	createdAt time.Time,
) *Instance {
	return &Instance{
		id:         id,
		templateID: templateID,
		brandID:    brandID,
		userID:     userID,
		createdBy:  createdBy,
		expiresAt:  expiresAt,
		isUsed:     isUsed,
		usedAt:     usedAt,
		createdAt:  createdAt,
	}
}

func (i *Instance) HasExpired(now time.Time) bool {
	return now.After(i.expiresAt)
}

// MarkUsed transitions the voucher to its terminal state.
func (i *Instance) MarkUsed(now time.Time) error {
	if i.isUsed {
		return ErrAlreadyUsed
	}
	if i.HasExpired(now) {
		return ErrExpired
	}
	i.isUsed = true
	i.usedAt = &now
	return nil
}

func (i *Instance) ID() uuid.UUID         { return i.id }
func (i *Instance) TemplateID() uuid.UUID { return i.templateID }
func (i *Instance) BrandID() uuid.UUID    { return i.brandID }
func (i *Instance) UserID() *uuid.UUID    { return i.userID }
func (i *Instance) CreatedBy() *uuid.UUID { return i.createdBy }
func (i *Instance) ExpiresAt() time.Time  { return i.expiresAt }
func (i *Instance) IsUsed() bool          { return i.isUsed }
func (i *Instance) UsedAt() *time.Time    { return i.usedAt }
func (i *Instance) CreatedAt() time.Time  { return i.createdAt }
