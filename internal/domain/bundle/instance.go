package bundle

import (
	"errors"
	"time"

	"plateful/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrTemplateInactive = errors.New("bundle template is not active")
	ErrSnapshotFailed   = errors.New("failed to snapshot bundle template")
)

// Snapshot is the point-in-time copy of a template stored on every sold
// instance. Catalog edits after the sale never reach it.
type Snapshot struct {
	Name                string
	Description         string
	CashPrice           *Price
	PointPrice          *Price
	Items               []Item
	VoucherValidityDays int32
}

// Instance is one user's purchased copy of a bundle template.
// Financial fields are immutable after creation; only Note may change.
type Instance struct {
	id            uuid.UUID
	templateID    uuid.UUID
	brandID       uuid.UUID
	userID        *uuid.UUID
	snapshot      Snapshot
	paymentMethod PaymentMethod
	finalPrice    int64
	note          string
	purchasedAt   time.Time
}

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateInstance materializes a purchase of the given template. The
// template must be active and carry a price for the payment method; the
// returned instance holds a deep value-copy of the template, not a live
// reference.
func (f *Factory) CreateInstance(
	tmpl *Template,
	userID *uuid.UUID,
	method PaymentMethod,
) (*Instance, error) {
	if !tmpl.IsActive() {
		return nil, ErrTemplateInactive
	}

	price, err := tmpl.ResolvePrice(method)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{
		Name:                tmpl.Name(),
		Description:         tmpl.Description(),
		VoucherValidityDays: tmpl.VoucherValidityDays(),
	}
	if cp := tmpl.CashPrice(); cp != nil {
		p := *cp
		snap.CashPrice = &p
	}
	if pp := tmpl.PointPrice(); pp != nil {
		p := *pp
		snap.PointPrice = &p
	}
	if err := copier.CopyWithOption(&snap.Items, tmpl.Items(), copier.Option{DeepCopy: true}); err != nil {
		return nil, ErrSnapshotFailed
	}

	return &Instance{
		id:            uuid.New(),
		templateID:    tmpl.ID(),
		brandID:       tmpl.BrandID(),
		userID:        userID,
		snapshot:      snap,
		paymentMethod: method,
		finalPrice:    price,
		purchasedAt:   f.Clock.Now(),
	}, nil
}

func ReconstructInstance(
	id, templateID, brandID uuid.UUID,
	userID *uuid.UUID,
	snapshot Snapshot,
	paymentMethod PaymentMethod,
	finalPrice int64,
	note string,
	purchasedAt time.Time,
) *Instance {
	return &Instance{
		id:            id,
		templateID:    templateID,
		brandID:       brandID,
		userID:        userID,
		snapshot:      snapshot,
		paymentMethod: paymentMethod,
		finalPrice:    finalPrice,
		note:          note,
		purchasedAt:   purchasedAt,
	}
}

// TotalVoucherCount is the number of voucher instances a full
// materialization of this purchase produces.
func (i *Instance) TotalVoucherCount() int32 {
	var total int32
	for _, it := range i.snapshot.Items {
		total += it.Quantity
	}
	return total
}

func (i *Instance) SetNote(note string) {
	i.note = note
}

func (i *Instance) ID() uuid.UUID                { return i.id }
func (i *Instance) TemplateID() uuid.UUID        { return i.templateID }
func (i *Instance) BrandID() uuid.UUID           { return i.brandID }
func (i *Instance) UserID() *uuid.UUID           { return i.userID }
func (i *Instance) Snapshot() Snapshot           { return i.snapshot }
func (i *Instance) PaymentMethod() PaymentMethod { return i.paymentMethod }
func (i *Instance) FinalPrice() int64            { return i.finalPrice }
func (i *Instance) Note() string                 { return i.note }
func (i *Instance) PurchasedAt() time.Time       { return i.purchasedAt }
