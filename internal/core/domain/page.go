package domain

import (
	"github.com/go-openapi/swag"
)

const (
	CaptionCreate = "Add Bicycle"
	CaptionUpdate = "Update Bicycle"

	MessageNoBicycles = "No bicycles added yet."
	MessageLoadFailed = "No bicycles found."
)

type Mode string

const (
	ModeCreate  Mode = "create"
	ModeEditing Mode = "editing"
)

// Form holds the raw values of the bicycle form as the browser posted them.
type Form struct {
	Brand string `json:"brand" form:"brand"`
	Model string `json:"model" form:"model"`
	Type  string `json:"type" form:"type"`
	Color string `json:"color" form:"color"`
	Price string `json:"price" form:"price"`
	Image string `json:"image" form:"image"`
}

func FormFromBicycle(b *Bicycle) Form {
	price := b.Price.String()
	if b.Price.IsNaN() {
		price = ""
	}
	return Form{
		Brand: b.Brand,
		Model: b.Model,
		Type:  b.Type,
		Color: b.Color,
		Price: price,
		Image: b.Image,
	}
}

// Bicycle assembles a record without id from the form. Price is coerced,
// nothing else is checked.
func (f Form) Bicycle() *Bicycle {
	return &Bicycle{
		Brand: f.Brand,
		Model: f.Model,
		Type:  f.Type,
		Color: f.Color,
		Price: ParsePrice(f.Price),
		Image: f.Image,
	}
}

// ListView is what the list container shows: either records or a
// placeholder message.
type ListView struct {
	Items   []*Bicycle `json:"items"`
	Message string     `json:"message,omitempty"`
}

func NewListView(records []*Bicycle) ListView {
	if len(records) == 0 {
		return ListView{Message: MessageNoBicycles}
	}
	return ListView{Items: records}
}

func FailedListView() ListView {
	return ListView{Message: MessageLoadFailed}
}

// Page is the state of one browser session: the form, the list snapshot
// last rendered and the id of the record being edited, if any.
type Page struct {
	EditID BicycleID `json:"edit_id,omitempty"`
	Form   Form      `json:"form"`
	List   ListView  `json:"list"`
}

func NewPage() *Page {
	return &Page{}
}

func (p *Page) Mode() Mode {
	if p.EditID.IsZero() {
		return ModeCreate
	}
	return ModeEditing
}

func (p *Page) Editing() bool {
	return p.Mode() == ModeEditing
}

func (p *Page) SubmitCaption() string {
	if p.Editing() {
		return CaptionUpdate
	}
	return CaptionCreate
}

// StartEditing moves the page into edit mode for b.
func (p *Page) StartEditing(id BicycleID, b *Bicycle) {
	p.Form = FormFromBicycle(b)
	p.EditID = id
}

// FinishEditing returns the page to create mode with an empty form.
func (p *Page) FinishEditing() {
	p.EditID = ""
	p.ResetForm()
}

func (p *Page) ResetForm() {
	p.Form = Form{}
}

func (p *Page) MarshalBinary() ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	return swag.WriteJSON(p)
}

func (p *Page) UnmarshalBinary(data []byte) error {
	var res Page
	if err := swag.ReadJSON(data, &res); err != nil {
		return err
	}
	*p = res
	return nil
}
