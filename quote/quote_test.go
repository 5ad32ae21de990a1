package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suranga-printers/print-shop-api/models"
)

func validForm() Form {
	return Form{
		CustomerName: "A. Perera",
		Phone:        "0771234567",
		ServiceName:  "Business Cards",
		Quantity:     100,
	}
}

func pricingTable() []models.DeliveryArea {
	return []models.DeliveryArea{
		{Area: "Dambulla", FeeLKR: 300, Active: true},
		{Area: "Matale", FeeLKR: 450, Active: true},
		{Area: "Galewela", FeeLKR: 500, Active: false},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantErr *ValidationError
	}{
		{"valid pickup", func(f *Form) {}, nil},
		{"valid delivery", func(f *Form) { f.Fulfillment = "Delivery"; f.DeliveryArea = "Dambulla" }, nil},
		{"missing name", func(f *Form) { f.CustomerName = "" }, ErrNameRequired},
		{"blank name", func(f *Form) { f.CustomerName = "   " }, ErrNameRequired},
		{"missing phone", func(f *Form) { f.Phone = "" }, ErrPhoneRequired},
		{"missing service", func(f *Form) { f.ServiceName = "" }, ErrServiceRequired},
		{"zero quantity", func(f *Form) { f.Quantity = 0 }, ErrInvalidQuantity},
		{"negative quantity", func(f *Form) { f.Quantity = -3 }, ErrInvalidQuantity},
		{"delivery without area", func(f *Form) { f.Fulfillment = "Delivery" }, ErrDeliveryAreaRequired},
		{"pickup ignores area", func(f *Form) { f.Fulfillment = "Pickup"; f.DeliveryArea = "" }, nil},
		{"call contact", func(f *Form) { f.ContactMethod = "Call" }, nil},
		{"unknown contact", func(f *Form) { f.ContactMethod = "Email" }, ErrInvalidContactMethod},
		{"unknown fulfillment", func(f *Form) { f.Fulfillment = "Courier" }, ErrInvalidFulfillment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := Validate(f)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestValidate_FirstFailingRuleWins(t *testing.T) {
	f := Form{Fulfillment: "Delivery"}
	assert.Equal(t, ErrNameRequired, Validate(f))

	f.CustomerName = "Nimal"
	assert.Equal(t, ErrPhoneRequired, Validate(f))

	f.Phone = "0711111111"
	assert.Equal(t, ErrServiceRequired, Validate(f))

	f.ServiceName = "Flyers"
	assert.Equal(t, ErrInvalidQuantity, Validate(f))

	f.Quantity = 1
	assert.Equal(t, ErrDeliveryAreaRequired, Validate(f))

	f.DeliveryArea = "Matale"
	assert.NoError(t, Validate(f))
}

func TestValidate_QuantityMessage(t *testing.T) {
	f := validForm()
	f.Quantity = 0
	err := Validate(f)
	require.Error(t, err)
	assert.Equal(t, "quantity must be at least 1", err.Error())
}

func TestDeliveryFee(t *testing.T) {
	areas := pricingTable()

	tests := []struct {
		name         string
		fulfillment  string
		area         string
		wantAmount   int
		wantResolved bool
	}{
		{"pickup is free", "Pickup", "", 0, true},
		{"pickup ignores area text", "Pickup", "Dambulla", 0, true},
		{"delivery to Dambulla", "Delivery", "Dambulla", 300, true},
		{"delivery to Matale", "Delivery", "Matale", 450, true},
		{"unknown area falls back to zero", "Delivery", "Kandy", 0, false},
		{"inactive area is not priced", "Delivery", "Galewela", 0, false},
		{"match is exact", "Delivery", "dambulla", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := DeliveryFee(tt.fulfillment, tt.area, areas)
			assert.Equal(t, tt.wantAmount, fee.Amount)
			assert.Equal(t, tt.wantResolved, fee.Resolved)
		})
	}
}

func TestDeliveryFee_EmptyTable(t *testing.T) {
	fee := DeliveryFee("Delivery", "Dambulla", nil)
	assert.Equal(t, Fee{Amount: 0, Resolved: false}, fee)
}

func TestCapFiles(t *testing.T) {
	files := []string{"a.pdf", "b.pdf", "c.png", "d.jpg", "e.zip", "f.pdf", "g.pdf"}

	kept := CapFiles(files)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.png", "d.jpg", "e.zip"}, kept)

	// appending to the capped slice must not clobber the caller's sixth file
	_ = append(kept, "x")
	assert.Equal(t, "f.pdf", files[5])

	assert.Equal(t, []string{"a"}, CapFiles([]string{"a"}))
	assert.Empty(t, CapFiles([]string{}))
}

func TestBuildPayload_DeliveryScenario(t *testing.T) {
	f := validForm()
	f.Fulfillment = "Delivery"
	f.DeliveryArea = "Dambulla"

	p, err := BuildPayload(f, pricingTable())
	require.NoError(t, err)

	assert.Equal(t, 300, p.DeliveryFeeLKR)
	assert.True(t, p.FeeResolved)
	assert.Equal(t, "WhatsApp", p.ContactMethod, "contact method defaults to WhatsApp")

	fields := map[string]string{}
	for _, fld := range p.Fields() {
		fields[fld.Name] = fld.Value
	}
	assert.Equal(t, "300", fields["delivery_fee_lkr"])
	assert.Equal(t, "Dambulla", fields["delivery_area"])
	assert.Equal(t, "100", fields["quantity"])
	assert.Equal(t, "A. Perera", fields["customer_name"])

	q := p.Quote()
	assert.Equal(t, models.StatusReceived, q.Status)
	assert.Equal(t, 300, q.DeliveryFeeLKR)
	assert.False(t, q.DeliveryFeeUnresolved)
}

func TestBuildPayload_PickupClearsArea(t *testing.T) {
	f := validForm()
	f.DeliveryArea = "Dambulla"

	p, err := BuildPayload(f, pricingTable())
	require.NoError(t, err)

	assert.Equal(t, "Pickup", p.Fulfillment)
	assert.Empty(t, p.DeliveryArea)
	assert.Equal(t, 0, p.DeliveryFeeLKR)
}

func TestBuildPayload_UnmatchedAreaIsFlagged(t *testing.T) {
	f := validForm()
	f.Fulfillment = "Delivery"
	f.DeliveryArea = "Anuradhapura"

	p, err := BuildPayload(f, pricingTable())
	require.NoError(t, err)

	assert.Equal(t, 0, p.DeliveryFeeLKR)
	assert.False(t, p.FeeResolved)
	assert.True(t, p.Quote().DeliveryFeeUnresolved)
}

func TestBuildPayload_Invalid(t *testing.T) {
	f := validForm()
	f.Quantity = 0

	p, err := BuildPayload(f, pricingTable())
	assert.Nil(t, p)
	assert.Equal(t, ErrInvalidQuantity, err)
}

func TestPayloadFieldsOrder(t *testing.T) {
	p, err := BuildPayload(validForm(), nil)
	require.NoError(t, err)

	var names []string
	for _, fld := range p.Fields() {
		names = append(names, fld.Name)
	}
	assert.Equal(t, []string{
		"customer_name", "phone", "contact_method", "service_name", "quantity",
		"size", "color", "paper", "finishing", "notes",
		"fulfillment", "delivery_area", "delivery_fee_lkr",
	}, names)
}
