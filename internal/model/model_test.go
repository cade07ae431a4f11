package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada ", User{FirstName: "Ada"}.FullName())
	assert.Equal(t, " ", User{}.FullName())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada", User{FirstName: "Ada"}.DisplayName("User"))
	assert.Equal(t, "User", User{}.DisplayName("User"))
}

func TestOrganizationCreateDTO_ToEntity(t *testing.T) {
	dto := validOrganization()
	org := dto.ToEntity()
	assert.True(t, org.IsActive)
	assert.Equal(t, "USD", org.Currency)

	inactive := false
	dto.IsActive = &inactive
	assert.False(t, dto.ToEntity().IsActive)
}

func TestOrganizationUpdateDTO_Apply(t *testing.T) {
	org := &Organization{Name: "Old", Currency: "USD", City: strPtr("Sofia")}
	dto := &OrganizationUpdateDTO{Name: strPtr("New"), Country: strPtr("BG")}

	dto.Apply(org)

	assert.Equal(t, "New", org.Name)
	assert.Equal(t, "USD", org.Currency)
	assert.Equal(t, "Sofia", *org.City)
	assert.Equal(t, "BG", *org.Country)
}
