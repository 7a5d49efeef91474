package builder

import (
	"github.com/rezonia/orderx/internal/model"
	"github.com/rezonia/orderx/internal/profile"
)

// PartyRole selects a trade party of the order header
type PartyRole int

const (
	Seller PartyRole = iota
	Buyer
	BuyerRequisitioner
	ProductEndUser
	ShipTo
	ShipFrom
	Invoicee
)

var partyRoleNames = map[PartyRole]string{
	Seller:             "seller",
	Buyer:              "buyer",
	BuyerRequisitioner: "buyer_requisitioner",
	ProductEndUser:     "product_end_user",
	ShipTo:             "ship_to",
	ShipFrom:           "ship_from",
	Invoicee:           "invoicee",
}

func (r PartyRole) String() string {
	if s, ok := partyRoleNames[r]; ok {
		return s
	}
	return "unknown"
}

// PartyRoles returns all roles in header order
func PartyRoles() []PartyRole {
	return []PartyRole{Seller, Buyer, BuyerRequisitioner, ProductEndUser, ShipTo, ShipFrom, Invoicee}
}

// ParsePartyRole resolves a role from its name
func ParsePartyRole(s string) (PartyRole, bool) {
	for r, name := range partyRoleNames {
		if name == s {
			return r, true
		}
	}
	return Seller, false
}

// partySlot returns the field holding the party for role, or nil when the
// profile has no such party
func (b *Builder) partySlot(role PartyRole) **model.TradeParty {
	t := &b.order.Transaction
	switch role {
	case Seller:
		return &t.Agreement.Seller
	case Buyer:
		return &t.Agreement.Buyer
	case BuyerRequisitioner:
		if b.supports(profile.FieldBuyerRequisitioner) {
			return &t.Agreement.BuyerRequisitioner
		}
	case ProductEndUser:
		if b.supports(profile.FieldProductEndUser) {
			return &t.Agreement.ProductEndUser
		}
	case ShipTo:
		return &t.Delivery.ShipTo
	case ShipFrom:
		if b.supports(profile.FieldShipFrom) {
			return &t.Delivery.ShipFrom
		}
	case Invoicee:
		if b.supports(profile.FieldInvoicee) {
			return &t.Settlement.Invoicee
		}
	}
	return nil
}

// Party returns the party for role
func (b *Builder) Party(role PartyRole) (*model.TradeParty, bool) {
	slot := b.partySlot(role)
	if slot == nil || *slot == nil {
		return nil, false
	}
	return *slot, true
}

// withParty runs fn on the party for role, creating it when needed. fn
// reports whether it attached anything; an untouched new party is dropped.
func (b *Builder) withParty(role PartyRole, fn func(p *model.TradeParty) bool) {
	slot := b.partySlot(role)
	if slot == nil {
		return
	}
	p := *slot
	if p == nil {
		p = &model.TradeParty{}
	}
	if fn(p) {
		*slot = p
	}
}

// SetParty sets the party for role, replacing any previous party
func (b *Builder) SetParty(role PartyRole, name, id, description string) *Builder {
	slot := b.partySlot(role)
	if slot == nil {
		return b
	}
	if !b.supports(profile.FieldPartyDescription) {
		description = ""
	}
	*slot = b.values.TradeParty(name, id, description)
	return b
}

// AddPartyID appends a seller or buyer assigned id
func (b *Builder) AddPartyID(role PartyRole, id string) *Builder {
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.ID(id, "")
		p.IDs = appendIf(p.IDs, v)
		return v != nil
	})
	return b
}

// AddPartyGlobalID appends a global id such as a GLN (scheme 0088)
func (b *Builder) AddPartyGlobalID(role PartyRole, id, scheme string) *Builder {
	if !b.supports(profile.FieldPartyGlobalID) {
		return b
	}
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.ID(id, scheme)
		p.GlobalIDs = appendIf(p.GlobalIDs, v)
		return v != nil
	})
	return b
}

// AddPartyTaxRegistration appends a tax registration, scheme VA or FC
func (b *Builder) AddPartyTaxRegistration(role PartyRole, scheme, id string) *Builder {
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.TaxRegistration(scheme, id)
		p.TaxRegistrations = appendIf(p.TaxRegistrations, v)
		return v != nil
	})
	return b
}

// SetPartyTaxRegistration replaces the tax registrations
func (b *Builder) SetPartyTaxRegistration(role PartyRole, scheme, id string) *Builder {
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.TaxRegistration(scheme, id)
		p.TaxRegistrations = replaceWith(p.TaxRegistrations, v)
		return v != nil
	})
	return b
}

// SetPartyAddress sets the postal address
func (b *Builder) SetPartyAddress(role PartyRole, in AddressInput) *Builder {
	b.withParty(role, func(p *model.TradeParty) bool {
		p.Address = b.values.Address(in)
		return p.Address != nil
	})
	return b
}

// SetPartyLegalOrganization sets the legal registration
func (b *Builder) SetPartyLegalOrganization(role PartyRole, id, scheme, tradingName string) *Builder {
	b.withParty(role, func(p *model.TradeParty) bool {
		p.LegalOrganization = b.values.LegalOrganization(id, scheme, tradingName)
		return p.LegalOrganization != nil
	})
	return b
}

// AddPartyContact appends a contact
func (b *Builder) AddPartyContact(role PartyRole, in ContactInput) *Builder {
	if !b.supports(profile.FieldPartyContact) {
		return b
	}
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.Contact(in)
		p.Contacts = appendIf(p.Contacts, v)
		return v != nil
	})
	return b
}

// SetPartyContact replaces the contacts
func (b *Builder) SetPartyContact(role PartyRole, in ContactInput) *Builder {
	if !b.supports(profile.FieldPartyContact) {
		return b
	}
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.Contact(in)
		p.Contacts = replaceWith(p.Contacts, v)
		return v != nil
	})
	return b
}

// AddPartyCommunication appends an electronic address, e.g. scheme EM
func (b *Builder) AddPartyCommunication(role PartyRole, uri, scheme string) *Builder {
	if !b.supports(profile.FieldPartyCommunication) {
		return b
	}
	b.withParty(role, func(p *model.TradeParty) bool {
		v := b.values.Communication(uri, scheme)
		p.Communications = appendIf(p.Communications, v)
		return v != nil
	})
	return b
}
