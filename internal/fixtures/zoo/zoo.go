// Package zoo holds annotated types and the units igjson generates for them.
package zoo

import "container/list"

//go:generate go run ../../../cmd

//igjson:abstract
type Animal struct {
	Name *string `json:"name"`
	Legs int     `json:"legs"`
}

//igjson:generate
type Dog struct {
	Animal
	Breed  *string   `json:"breed"`
	Good   bool      `json:"good"`
	Tricks []*string `json:"tricks"`
}

//igjson:generate
type Address struct {
	Street *string `json:"street"`
	Zip    *int    `json:"zip"`
}

//igjson:generate
type Keeper struct {
	ID      int64      `json:"id"`
	Home    *Address   `json:"home"`
	Offices []*Address `json:"offices"`
	Dogs    *list.List `json:"dogs" igjson:"queue=Dog"`
}

//igjson:generate
type AllKinds struct {
	Bool    bool       `json:"bool"`
	BoolP   *bool      `json:"bool_p"`
	Int     int        `json:"int"`
	IntP    *int       `json:"int_p"`
	Long    int64      `json:"long"`
	LongP   *int64     `json:"long_p"`
	Float   float32    `json:"float"`
	FloatP  *float32   `json:"float_p"`
	Double  float64    `json:"double"`
	DoubleP *float64   `json:"double_p"`
	Str     *string    `json:"str"`
	Ints    []int      `json:"ints"`
	IntPs   []*int     `json:"int_ps"`
	Strs    []*string  `json:"strs"`
	Doubles *list.List `json:"doubles" igjson:"queue=double"`
	Names   *list.List `json:"names" igjson:"queue=string"`
	Bools   []bool     `json:"bools"`
	Longs   []*int64   `json:"longs"`
	Floats  *list.List `json:"floats" igjson:"queue=float"`
}

//igjson:generate
type Strict struct {
	Count *int     `json:"count" igjson:"exact"`
	Label *string  `json:"label" igjson:"exact"`
	Ratio *float64 `json:"ratio" igjson:"exact"`
	Size  int      `json:"size" igjson:"exact"`
	Codes []*int   `json:"codes" igjson:"exact"`
	Sizes []int    `json:"sizes" igjson:"exact"`
}

//igjson:generate
type Temperature struct {
	Celsius    float64 `json:"celsius"`
	Fahrenheit float64 `json:"-"`
}

// PostProcess derives the Fahrenheit reading. It returns a new value.
func (t *Temperature) PostProcess() *Temperature {
	return &Temperature{
		Celsius:    t.Celsius,
		Fahrenheit: t.Celsius*9/5 + 32,
	}
}
