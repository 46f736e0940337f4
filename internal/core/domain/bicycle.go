package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-openapi/swag"
)

var (
	ErrBicycleNotFound = errors.New("bicycle not found")
	ErrInvalidID       = errors.New("invalid bicycle id")
)

// BicycleID is assigned by the backend. It travels as a JSON number or
// string and is kept opaque by the client.
type BicycleID string

func (id BicycleID) String() string {
	return string(id)
}

func (id BicycleID) IsZero() bool {
	return id == ""
}

// MarshalJSON writes canonical integers such as "42" as numbers and every
// other id, "0042" and "+5" included, as strings.
func (id BicycleID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *BicycleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BicycleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidID
	}
	*id = BicycleID(n.String())
	return nil
}

// Price is a float that serialises NaN and infinities as null, the way a
// browser's JSON.stringify does.
type Price float64

func (p Price) IsNaN() bool {
	return math.IsNaN(float64(p))
}

// String prints the price the way a browser prints a number. Values
// outside [1e-6, 1e21) use exponent form.
func (p Price) String() string {
	f := float64(p)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(sci, 'e')
	exp, _ := strconv.Atoi(sci[i+1:])
	if exp >= 21 || exp <= -7 {
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		return sci[:i] + "e" + sign + strconv.Itoa(exp)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = Price(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

var pricePrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParsePrice reads the longest numeric prefix of s. Input without one
// yields NaN.
func ParsePrice(s string) Price {
	m := pricePrefix.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if m == "" {
		return Price(math.NaN())
	}
	// ErrRange still yields a signed infinity, which is what we want
	f, _ := strconv.ParseFloat(m, 64)
	return Price(f)
}

// swagger:model domain.Bicycle
type Bicycle struct {
	ID    BicycleID `json:"id,omitempty" swaggertype:"string" example:"1"`
	Brand string    `json:"brand" validate:"max=100" example:"Trek"`
	Model string    `json:"model" validate:"max=100" example:"Marlin"`
	Type  string    `json:"type" validate:"max=50" example:"MTB"`
	Color string    `json:"color" validate:"max=50" example:"Red"`
	Price Price     `json:"price" swaggertype:"number" example:"500"`
	Image string    `json:"image" validate:"max=2048" example:"x.png"`
}

// Title is the heading shown for a record.
func (b *Bicycle) Title() string {
	return b.Brand + " " + b.Model
}

func (b *Bicycle) MarshalBinary() ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return swag.WriteJSON(b)
}

func (b *Bicycle) UnmarshalBinary(data []byte) error {
	var res Bicycle
	if err := swag.ReadJSON(data, &res); err != nil {
		return err
	}
	*b = res
	return nil
}
