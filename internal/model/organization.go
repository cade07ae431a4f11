package model

import (
	"time"
)

// CurrenciesEnum lists the currencies an organization may book in.
var CurrenciesEnum = []string{"USD", "BGN", "ILS", "EUR"}

// DefaultValueDateType values.
const (
	ValueDateTypeToday        = "TODAY"
	ValueDateTypeEndOfMonth   = "END_OF_MONTH"
	ValueDateTypeStartOfMonth = "START_OF_MONTH"
)

// DefaultValueDateTypeEnum lists the accepted defaultValueDateType values.
var DefaultValueDateTypeEnum = []string{ValueDateTypeToday, ValueDateTypeEndOfMonth, ValueDateTypeStartOfMonth}

// WeekDaysEnum lists the accepted startWeekOn values.
var WeekDaysEnum = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// Organization is the tenant record every other entity hangs off.
type Organization struct {
	Base
	Name                 string     `json:"name" example:"Ever Co."`
	ImageURL             *string    `json:"imageUrl,omitempty" maxLength:"500"`
	Currency             string     `json:"currency" enums:"USD,BGN,ILS,EUR"`
	ValueDate            *time.Time `json:"valueDate,omitempty"`
	DefaultValueDateType string     `json:"defaultValueDateType" enums:"TODAY,END_OF_MONTH,START_OF_MONTH"`
	IsActive             bool       `json:"isActive" default:"true"`
	DefaultAlignmentType *string    `json:"defaultAlignmentType,omitempty"`
	TimeZone             *string    `json:"timeZone,omitempty"`
	BrandColor           *string    `json:"brandColor,omitempty"`
	DateFormat           *string    `json:"dateFormat,omitempty"`
	OfficialName         *string    `json:"officialName,omitempty"`
	StartWeekOn          *string    `json:"startWeekOn,omitempty" enums:"MONDAY,TUESDAY,WEDNESDAY,THURSDAY,FRIDAY,SATURDAY,SUNDAY"`
	TaxID                *string    `json:"taxId,omitempty" maxLength:"256"`
	Country              *string    `json:"country,omitempty"`
	City                 *string    `json:"city,omitempty"`
	Address              *string    `json:"address,omitempty"`
	Address2             *string    `json:"address2,omitempty"`
	Postcode             *string    `json:"postcode,omitempty"`
	RegionCode           *string    `json:"regionCode,omitempty"`
	NumberFormat         *string    `json:"numberFormat,omitempty"`
}

// OrganizationCreateDTO is the request body for creating an organization.
type OrganizationCreateDTO struct {
	Name                 string     `json:"name" validate:"required,notblank"`
	ImageURL             *string    `json:"imageUrl" validate:"omitnil,max=500"`
	Currency             string     `json:"currency" validate:"required,currency" enums:"USD,BGN,ILS,EUR"`
	ValueDate            *time.Time `json:"valueDate"`
	DefaultValueDateType string     `json:"defaultValueDateType" validate:"required,value_date_type" enums:"TODAY,END_OF_MONTH,START_OF_MONTH"`
	IsActive             *bool      `json:"isActive"`
	DefaultAlignmentType *string    `json:"defaultAlignmentType"`
	TimeZone             *string    `json:"timeZone"`
	BrandColor           *string    `json:"brandColor"`
	DateFormat           *string    `json:"dateFormat"`
	OfficialName         *string    `json:"officialName"`
	StartWeekOn          *string    `json:"startWeekOn" validate:"omitnil,week_day"`
	TaxID                *string    `json:"taxId" validate:"omitnil,max=256"`
	Country              *string    `json:"country"`
	City                 *string    `json:"city"`
	Address              *string    `json:"address"`
	Address2             *string    `json:"address2"`
	Postcode             *string    `json:"postcode"`
	RegionCode           *string    `json:"regionCode"`
	NumberFormat         *string    `json:"numberFormat"`
}

// ToEntity maps the DTO onto a new Organization. IsActive defaults to true.
func (d *OrganizationCreateDTO) ToEntity() *Organization {
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	return &Organization{
		Name:                 d.Name,
		ImageURL:             d.ImageURL,
		Currency:             d.Currency,
		ValueDate:            d.ValueDate,
		DefaultValueDateType: d.DefaultValueDateType,
		IsActive:             active,
		DefaultAlignmentType: d.DefaultAlignmentType,
		TimeZone:             d.TimeZone,
		BrandColor:           d.BrandColor,
		DateFormat:           d.DateFormat,
		OfficialName:         d.OfficialName,
		StartWeekOn:          d.StartWeekOn,
		TaxID:                d.TaxID,
		Country:              d.Country,
		City:                 d.City,
		Address:              d.Address,
		Address2:             d.Address2,
		Postcode:             d.Postcode,
		RegionCode:           d.RegionCode,
		NumberFormat:         d.NumberFormat,
	}
}

// OrganizationUpdateDTO is a partial update; nil fields are left untouched.
type OrganizationUpdateDTO struct {
	Name                 *string    `json:"name" validate:"omitnil,notblank"`
	ImageURL             *string    `json:"imageUrl" validate:"omitnil,max=500"`
	Currency             *string    `json:"currency" validate:"omitnil,currency"`
	ValueDate            *time.Time `json:"valueDate"`
	DefaultValueDateType *string    `json:"defaultValueDateType" validate:"omitnil,value_date_type"`
	IsActive             *bool      `json:"isActive"`
	DefaultAlignmentType *string    `json:"defaultAlignmentType"`
	TimeZone             *string    `json:"timeZone"`
	BrandColor           *string    `json:"brandColor"`
	DateFormat           *string    `json:"dateFormat"`
	OfficialName         *string    `json:"officialName"`
	StartWeekOn          *string    `json:"startWeekOn" validate:"omitnil,week_day"`
	TaxID                *string    `json:"taxId" validate:"omitnil,max=256"`
	Country              *string    `json:"country"`
	City                 *string    `json:"city"`
	Address              *string    `json:"address"`
	Address2             *string    `json:"address2"`
	Postcode             *string    `json:"postcode"`
	RegionCode           *string    `json:"regionCode"`
	NumberFormat         *string    `json:"numberFormat"`
}

// Apply copies every non-nil field onto org.
func (d *OrganizationUpdateDTO) Apply(org *Organization) {
	if d.Name != nil {
		org.Name = *d.Name
	}
	if d.Currency != nil {
		org.Currency = *d.Currency
	}
	if d.DefaultValueDateType != nil {
		org.DefaultValueDateType = *d.DefaultValueDateType
	}
	if d.IsActive != nil {
		org.IsActive = *d.IsActive
	}
	if d.ValueDate != nil {
		org.ValueDate = d.ValueDate
	}
	setIf(&org.ImageURL, d.ImageURL)
	setIf(&org.DefaultAlignmentType, d.DefaultAlignmentType)
	setIf(&org.TimeZone, d.TimeZone)
	setIf(&org.BrandColor, d.BrandColor)
	setIf(&org.DateFormat, d.DateFormat)
	setIf(&org.OfficialName, d.OfficialName)
	setIf(&org.StartWeekOn, d.StartWeekOn)
	setIf(&org.TaxID, d.TaxID)
	setIf(&org.Country, d.Country)
	setIf(&org.City, d.City)
	setIf(&org.Address, d.Address)
	setIf(&org.Address2, d.Address2)
	setIf(&org.Postcode, d.Postcode)
	setIf(&org.RegionCode, d.RegionCode)
	setIf(&org.NumberFormat, d.NumberFormat)
}

func setIf(dst **string, v *string) {
	if v != nil {
		*dst = v
	}
}
