package types

import "time"

// Customer is a person the shop does repair work for. The ID is assigned by
// the storage layer on creation (see NextID) and is immutable afterwards, as
// is CreatedAt. AltPhone, Email and Address are optional; the empty string
// means the field was never set.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	AltPhone  string    `json:"altPhone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerPatch is a sparse update to a Customer. Each field is an explicit
// present/absent wrapper so an omitted field and a field deliberately cleared
// to the empty string are distinguishable by type. ID and CreatedAt are
// immutable and therefore not patchable.
type CustomerPatch struct {
	Name     Field[string]
	Phone    Field[string]
	AltPhone Field[string]
	Email    Field[string]
	Address  Field[string]
}

// Apply copies every set field of the patch onto the customer.
func (p CustomerPatch) Apply(c *Customer) {
	if v, ok := p.Name.Get(); ok {
		c.Name = v
	}
	if v, ok := p.Phone.Get(); ok {
		c.Phone = v
	}
	if v, ok := p.AltPhone.Get(); ok {
		c.AltPhone = v
	}
	if v, ok := p.Email.Get(); ok {
		c.Email = v
	}
	if v, ok := p.Address.Get(); ok {
		c.Address = v
	}
}
