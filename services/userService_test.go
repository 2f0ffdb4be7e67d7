package services

import (
	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store/storetest"
	"github.com/stretchr/testify/require"
)

var homeAddress = dto.AddressRequest{
	Street:  "1 Main St",
	City:    "Nairobi",
	State:   "Nairobi",
	ZipCode: "00100",
	Country: "Kenya",
}

func (s *ServiceTestSuite) TestAddAddressDefaultsType() {
	address, err := s.users.AddAddress(s.ctx, s.user.ID, homeAddress)
	require.NoError(s.T(), err)
	require.Equal(s.T(), models.DefaultAddressType, address.AddressType)

	work := homeAddress
	work.AddressType = "Work"
	address, err = s.users.AddAddress(s.ctx, s.user.ID, work)
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Work", address.AddressType)

	profile, err := s.users.Profile(s.ctx, s.user.ID)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.user.Email, profile.Email)
	require.Len(s.T(), profile.Addresses, 2)
}

func (s *ServiceTestSuite) TestAddAddressValidation() {
	_, err := s.users.AddAddress(s.ctx, s.user.ID, dto.AddressRequest{Street: "1 Main St"})
	var verr *ValidationError
	require.ErrorAs(s.T(), err, &verr)
	require.Len(s.T(), verr.Fields, 4)
	require.NotContains(s.T(), verr.Fields, "street")
}

func (s *ServiceTestSuite) TestForeignAddressIsNotFound() {
	other := storetest.CreateUser(s.T(), s.db, "other@test.io")
	address, err := s.users.AddAddress(s.ctx, s.user.ID, homeAddress)
	require.NoError(s.T(), err)

	_, err = s.users.GetAddress(s.ctx, other.ID, address.ID)
	require.ErrorIs(s.T(), err, ErrNotFound)
	require.ErrorIs(s.T(), s.users.RemoveAddress(s.ctx, other.ID, address.ID), ErrNotFound)

	mine, err := s.users.ListAddresses(s.ctx, other.ID)
	require.NoError(s.T(), err)
	require.Empty(s.T(), mine)

	require.NoError(s.T(), s.users.RemoveAddress(s.ctx, s.user.ID, address.ID))
	_, err = s.users.GetAddress(s.ctx, s.user.ID, address.ID)
	require.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ServiceTestSuite) TestProfileOfUnknownUser() {
	_, err := s.users.Profile(s.ctx, 999)
	require.ErrorIs(s.T(), err, ErrNotFound)
}
